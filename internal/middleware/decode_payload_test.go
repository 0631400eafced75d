package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/usersvc/internal/middleware"
	"github.com/ferdiebergado/usersvc/internal/pkg/web"
)

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	const header = "X-Handler-Called"

	type person struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	tests := []struct {
		name     string
		code     int
		payload  []byte
		bodySize int64
		header   string
		wantBody string
	}{
		{"Valid payload", http.StatusOK, []byte(`{"name":"juan","age":47}`), 32, "true", `{"name":"juan","age":47}`},
		{"Empty payload", http.StatusOK, []byte(``), 32, "true", `{"name":"","age":0}`},
		{"Unknown field is ignored", http.StatusOK, []byte(`{"name":"yaye","age":12,"is_smart":true}`), 64, "true", `{"name":"yaye","age":12}`},
		{"Payload too large", http.StatusRequestEntityTooLarge, []byte(`{"name": "agnis", "age": 13}`), 4, "", ""},
		{"Extra payload", http.StatusBadRequest, []byte(`{"name": "bibi buy", "age": 2}{"name": "aremondeng", "age": 6}`), 64, "", ""},
		{"Incorrect data type", http.StatusBadRequest, []byte(`{"name": "agnis", "age": "13"}`), 64, "", ""},
		{"Malformed payload", http.StatusBadRequest, []byte(`{"name"`), 64, "", ""},
		{"Array passed to string", http.StatusBadRequest, []byte(`{"name": ["agnis", "yaye"], "age": 13}`), 64, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[person](r.Context())
				if err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}

				w.Header().Set(header, "true")
				w.WriteHeader(http.StatusOK)
				if err := json.NewEncoder(w).Encode(&params); err != nil {
					t.Errorf("encode params: %v", err)
				}
			})

			body := bytes.NewBuffer(tt.payload)
			req := httptest.NewRequest(http.MethodPost, "/", body)
			rec := httptest.NewRecorder()
			mw := middleware.DecodePayload[person](tt.bodySize)(handler)
			mw.ServeHTTP(rec, req)

			gotCode, wantCode := rec.Code, tt.code
			if gotCode != wantCode {
				t.Errorf("rec.Code = %d, want: %d", gotCode, wantCode)
			}

			gotHeader, wantHeader := rec.Header().Get(header), tt.header
			if gotHeader != wantHeader {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, gotHeader, wantHeader)
			}

			if tt.header == "true" {
				gotBody := strings.TrimSuffix(rec.Body.String(), "\n")
				if gotBody != tt.wantBody {
					t.Errorf("rec.Body.String() = %q, want: %q", gotBody, tt.wantBody)
				}
				return
			}

			var errRes web.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&errRes); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if errRes.Message != "Invalid data" {
				t.Errorf("errRes.Message = %q, want: %q", errRes.Message, "Invalid data")
			}
		})
	}
}
