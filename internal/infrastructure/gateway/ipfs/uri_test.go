package ipfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testGateways = []string{"https://ipfs.io", "https://dweb.link"}

func TestURIToHTTP(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want []string
	}{
		{
			name: "https passes through",
			uri:  "https://example.com/doc.json",
			want: []string{"https://example.com/doc.json"},
		},
		{
			name: "http upgrades with fallback",
			uri:  "http://example.com/doc.json",
			want: []string{"https://example.com/doc.json", "http://example.com/doc.json"},
		},
		{
			name: "ipfs expands per gateway",
			uri:  "ipfs://QmHash123",
			want: []string{"https://ipfs.io/ipfs/QmHash123", "https://dweb.link/ipfs/QmHash123"},
		},
		{
			name: "ipfs without slashes",
			uri:  "ipfs:QmHash123",
			want: []string{"https://ipfs.io/ipfs/QmHash123", "https://dweb.link/ipfs/QmHash123"},
		},
		{
			name: "ipns expands per gateway",
			uri:  "ipns://k51name",
			want: []string{"https://ipfs.io/ipns/k51name", "https://dweb.link/ipns/k51name"},
		},
		{
			name: "ar maps to arweave",
			uri:  "ar://tx42",
			want: []string{"https://arweave.net/tx42"},
		},
		{
			name: "data passes through",
			uri:  "data:application/json;base64,e30=",
			want: []string{"data:application/json;base64,e30="},
		},
		{
			name: "scheme is case-insensitive",
			uri:  "IPFS://QmHash123",
			want: []string{"https://ipfs.io/ipfs/QmHash123", "https://dweb.link/ipfs/QmHash123"},
		},
		{name: "unknown scheme yields nothing", uri: "ftp://example.com"},
		{name: "no scheme yields nothing", uri: "just-a-string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, URIToHTTP(tt.uri, testGateways))
		})
	}
}
