package ipfs

import (
	"fmt"
	"strings"
)

// URIToHTTP rewrites a metadata URI to the list of fetchable http(s) URLs
// for the same content, in the order they should be tried. Content-addressed
// schemes (ipfs, ipns) expand to one candidate per public gateway; plain
// http is upgraded to https first with the original kept as a fallback.
// Unknown schemes yield no candidates.
func URIToHTTP(uri string, gateways []string) []string {
	scheme, rest, found := strings.Cut(uri, ":")
	if !found {
		return nil
	}

	switch strings.ToLower(scheme) {
	case "blob", "data", "https":
		return []string{uri}
	case "http":
		return []string{"https" + uri[4:], uri}
	case "ipfs":
		hash := strings.TrimPrefix(rest, "//")
		urls := make([]string, 0, len(gateways))
		for _, g := range gateways {
			urls = append(urls, fmt.Sprintf("%s/ipfs/%s", g, hash))
		}
		return urls
	case "ipns":
		name := strings.TrimPrefix(rest, "//")
		urls := make([]string, 0, len(gateways))
		for _, g := range gateways {
			urls = append(urls, fmt.Sprintf("%s/ipns/%s", g, name))
		}
		return urls
	case "ar":
		tx := strings.TrimPrefix(rest, "//")
		return []string{"https://arweave.net/" + tx}
	default:
		return nil
	}
}
