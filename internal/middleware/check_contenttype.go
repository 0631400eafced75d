package middleware

import (
	"fmt"
	"net/http"

	"github.com/ferdiebergado/usersvc/internal/pkg/message"
	"github.com/ferdiebergado/usersvc/internal/pkg/web"
)

// CheckContentType rejects requests with a body that is not declared as JSON.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			if !web.IsJSON(r) {
				contentType := r.Header.Get(web.HeaderContentType)
				web.RespondUnsupportedMediaType(w, fmt.Errorf("invalid content-type: %q", contentType), message.UnsupportedMedia, nil)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
