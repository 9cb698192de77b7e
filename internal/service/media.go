package service

import "strings"

// resolveImageURL turns a stored relative image path into an absolute URL.
// Already-absolute values and empty values pass through untouched.
func resolveImageURL(baseURL, path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(trimmed, "/")
}
