package helpers

import "strings"

// ResolveAssetURL joins a stored relative file path with the configured asset
// base URL. Absolute URLs (external video hosts, CDN links) pass through
// untouched so resources may reference either uploaded files or external
// sources.
func ResolveAssetURL(baseURL, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if baseURL == "" {
		return path
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
