package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mizusawah/hatlink/internal/application/port/output"
)

// S3ArchiveGateway stores archives in an S3 bucket.
// Key structure: s3://<bucket>/<prefix>/archives/<identity>/<cid>/
//   - content: the document as uploaded
//   - metadata.json: archive bookkeeping
type S3ArchiveGateway struct {
	client     S3API
	bucketName string
	prefix     string
}

// S3Config holds S3 archive gateway configuration
type S3Config struct {
	BucketName string
	Prefix     string
	Region     string // uses the default region if empty
}

// NewS3ArchiveGateway creates an S3-backed archive gateway
func NewS3ArchiveGateway(cfg S3Config) (*S3ArchiveGateway, error) {
	awsCfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	if cfg.Region != "" {
		awsCfg.Region = cfg.Region
	}
	return &S3ArchiveGateway{
		client:     s3.NewFromConfig(awsCfg),
		bucketName: cfg.BucketName,
		prefix:     cfg.Prefix,
	}, nil
}

// NewS3ArchiveGatewayWithClient creates a gateway with a custom S3 client.
// Used by tests with mock clients.
func NewS3ArchiveGatewayWithClient(client S3API, bucketName, prefix string) *S3ArchiveGateway {
	return &S3ArchiveGateway{
		client:     client,
		bucketName: bucketName,
		prefix:     prefix,
	}
}

// ArchiveDocument uploads the document and its metadata object
func (g *S3ArchiveGateway) ArchiveDocument(ctx context.Context, req output.ArchiveRequest) (*output.ArchiveMetadata, error) {
	contentKey := g.buildKey("archives", req.Identity, req.CID, "content")

	s3Metadata := map[string]string{
		"identity":    req.Identity,
		"cid":         req.CID,
		"archived-at": time.Now().Format(time.RFC3339),
	}
	for k, v := range req.Metadata {
		s3Metadata[k] = v
	}

	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucketName),
		Key:         aws.String(contentKey),
		Body:        bytes.NewReader(req.Content),
		ContentType: aws.String("application/json"),
		Metadata:    s3Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("upload to S3: %w", err)
	}

	metadata := output.ArchiveMetadata{
		Identity:    req.Identity,
		CID:         req.CID,
		StoragePath: fmt.Sprintf("s3://%s/%s", g.bucketName, contentKey),
		Size:        int64(len(req.Content)),
		ArchivedAt:  time.Now(),
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal archive metadata: %w", err)
	}
	metadataKey := g.buildKey("archives", req.Identity, req.CID, "metadata.json")
	_, err = g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucketName),
		Key:         aws.String(metadataKey),
		Body:        bytes.NewReader(metadataJSON),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("upload metadata to S3: %w", err)
	}

	return &metadata, nil
}

// ListArchives returns the archive entries stored for the identity
func (g *S3ArchiveGateway) ListArchives(ctx context.Context, identity string) ([]*output.ArchiveMetadata, error) {
	prefix := g.buildKey("archives", identity) + "/"

	listOutput, err := g.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(g.bucketName),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return nil, fmt.Errorf("list S3 objects: %w", err)
	}

	var list []*output.ArchiveMetadata
	for _, obj := range listOutput.Contents {
		key := aws.ToString(obj.Key)
		if !strings.HasSuffix(key, "metadata.json") {
			continue
		}

		metadataObj, err := g.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(g.bucketName),
			Key:    aws.String(key),
		})
		if err != nil {
			// skip entries that fail to download
			continue
		}
		metadataJSON, err := io.ReadAll(metadataObj.Body)
		metadataObj.Body.Close()
		if err != nil {
			continue
		}

		var metadata output.ArchiveMetadata
		if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
			continue
		}
		list = append(list, &metadata)
	}
	return list, nil
}

// buildKey joins key parts under the configured prefix
func (g *S3ArchiveGateway) buildKey(parts ...string) string {
	if g.prefix != "" {
		parts = append([]string{g.prefix}, parts...)
	}
	return strings.Join(parts, "/")
}
