package ipfs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{"type":"1.0","data":{"name":"Top Hat","description":"the root"}}`

func TestFetcherFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ipfs/QmHash", r.URL.Path)
		w.Write([]byte(validDoc))
	}))
	defer srv.Close()

	f, err := NewFetcher([]string{srv.URL})
	require.NoError(t, err)

	doc, err := f.FetchJSON(context.Background(), "ipfs://QmHash")
	require.NoError(t, err)

	data, ok := doc["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Top Hat", data["name"])
}

func TestFetcherFallsBackToNextGateway(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bad.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(validDoc))
	}))
	defer good.Close()

	f, err := NewFetcher([]string{bad.URL, good.URL})
	require.NoError(t, err)

	doc, err := f.FetchJSON(context.Background(), "ipfs://QmHash")
	require.NoError(t, err)
	assert.Contains(t, doc, "data")
}

func TestFetcherRejectsInvalidDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"no_data_field": true}`))
	}))
	defer srv.Close()

	f, err := NewFetcher([]string{srv.URL})
	require.NoError(t, err)

	_, err = f.FetchJSON(context.Background(), "ipfs://QmHash")
	assert.Error(t, err)
}

func TestFetcherUnsupportedScheme(t *testing.T) {
	f, err := NewFetcher(nil)
	require.NoError(t, err)

	_, err = f.FetchJSON(context.Background(), "ftp://nope")
	assert.Error(t, err)
}

func TestFetcherResolveURL(t *testing.T) {
	f, err := NewFetcher([]string{"https://ipfs.io"})
	require.NoError(t, err)

	assert.Equal(t, "https://ipfs.io/ipfs/Qm1", f.ResolveURL("ipfs://Qm1"))
	assert.Equal(t, "", f.ResolveURL("ftp://nope"))
}
