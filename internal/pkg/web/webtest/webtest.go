// Package webtest holds assertions shared by HTTP handler tests.
package webtest

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/ferdiebergado/usersvc/internal/pkg/web"
)

func DecodeJSONResponse[T any](t *testing.T, res *http.Response) T {
	t.Helper()

	var body T
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode json response: %v", err)
	}

	return body
}

func AssertContentType(t *testing.T, res *http.Response) {
	t.Helper()

	gotContent := res.Header.Get(web.HeaderContentType)
	if !strings.HasPrefix(gotContent, web.MimeJSON) {
		t.Errorf("res.Header.Get(%q) = %q, want: %q", web.HeaderContentType, gotContent, web.MimeJSON)
	}
}
