package storage

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizusawah/hatlink/internal/application/port/output"
)

const testIdentity = "0xabc0000000000000000000000000000000000001"

func testRequest(cid string) output.ArchiveRequest {
	return output.ArchiveRequest{
		Identity: testIdentity,
		CID:      cid,
		Content:  []byte(`{"type":"1.0","data":{"name":"Top Hat"}}`),
		Metadata: map[string]string{"source": "link-step"},
	}
}

func TestLocalArchiveRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	gw, err := NewLocalArchiveGateway(fs, "/var/archive")
	require.NoError(t, err)
	ctx := context.Background()

	meta, err := gw.ArchiveDocument(ctx, testRequest("QmCid1"))
	require.NoError(t, err)
	assert.Equal(t, "QmCid1", meta.CID)
	assert.Equal(t, int64(len(testRequest("QmCid1").Content)), meta.Size)

	content, err := afero.ReadFile(fs, meta.StoragePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Top Hat")

	list, err := gw.ListArchives(ctx, testIdentity)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "QmCid1", list[0].CID)
}

func TestLocalArchiveListUnknownIdentity(t *testing.T) {
	gw, err := NewLocalArchiveGateway(afero.NewMemMapFs(), "/var/archive")
	require.NoError(t, err)

	list, err := gw.ListArchives(context.Background(), "0xnobody")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestS3ArchiveRoundTrip(t *testing.T) {
	client := NewMockS3Client()
	gw := NewS3ArchiveGatewayWithClient(client, "hatlink-archive", "prod")
	ctx := context.Background()

	meta, err := gw.ArchiveDocument(ctx, testRequest("QmCid2"))
	require.NoError(t, err)
	assert.Equal(t, "s3://hatlink-archive/prod/archives/"+testIdentity+"/QmCid2/content", meta.StoragePath)

	// content object plus metadata object
	assert.Equal(t, 2, client.ObjectCount())

	list, err := gw.ListArchives(ctx, testIdentity)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "QmCid2", list[0].CID)
	assert.Equal(t, testIdentity, list[0].Identity)
}

func TestS3ArchiveListEmpty(t *testing.T) {
	gw := NewS3ArchiveGatewayWithClient(NewMockS3Client(), "hatlink-archive", "")

	list, err := gw.ListArchives(context.Background(), testIdentity)
	require.NoError(t, err)
	assert.Empty(t, list)
}
