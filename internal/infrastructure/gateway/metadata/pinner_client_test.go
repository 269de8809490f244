package metadata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinnerUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/uploadMetadata", r.URL.Path)
		assert.Equal(t, "hatDetails.json", r.URL.Query().Get("name"))

		var doc map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		assert.Contains(t, doc, "data")

		json.NewEncoder(w).Encode(map[string]string{"cid": "QmNewCid"})
	}))
	defer srv.Close()

	client := NewPinnerClient(srv.URL)
	cid, err := client.Upload(context.Background(), "hatDetails.json", map[string]any{
		"type": "1.0",
		"data": map[string]any{"name": "Top Hat"},
	})
	require.NoError(t, err)
	assert.Equal(t, "QmNewCid", cid)
}

func TestPinnerUploadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "pin queue full", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewPinnerClient(srv.URL).Upload(context.Background(), "hatDetails.json", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestPinnerUploadEmptyCID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	_, err := NewPinnerClient(srv.URL).Upload(context.Background(), "hatDetails.json", map[string]any{})
	assert.Error(t, err)
}
