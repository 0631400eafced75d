package web

import (
	"net/http"
	"strings"
)

const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	MimeJSON          = "application/json"
)

// IsJSON reports whether the request declares a JSON body.
func IsJSON(r *http.Request) bool {
	contentType := r.Header.Get(HeaderContentType)
	return strings.HasPrefix(strings.ToLower(contentType), MimeJSON)
}
