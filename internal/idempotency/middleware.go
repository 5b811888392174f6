package idempotency

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	HeaderKey      = "Idempotency-Key"
	HeaderReplayed = "Idempotent-Replayed"

	maxKeyLen = 255
)

// Middleware replays the stored response for a request whose Idempotency-Key
// was seen before with the same body. A reused key with a different body is
// rejected with 422. Requests without the header pass through untouched and
// responses with a 5xx status are never stored, so those can be retried.
func Middleware(s *Store, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderKey)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			if len(key) > maxKeyLen {
				writeError(w, http.StatusBadRequest, "Idempotency-Key is too long")
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Unable to read request body")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			storeKey := r.Method + " " + r.URL.Path + " " + key
			fp := fingerprint(body)

			rec, err := s.Get(storeKey)
			switch {
			case err == nil:
				if rec.Fingerprint != fp {
					writeError(w, http.StatusUnprocessableEntity, "Idempotency-Key was already used with a different request body")
					return
				}
				log.InfoContext(r.Context(), "replaying stored response", "key", key, "status", rec.Status)
				replay(w, rec)
				return
			case !errors.Is(err, ErrNotFound):
				log.ErrorContext(r.Context(), "idempotency lookup failed", "key", key, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			var buf bytes.Buffer
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(&buf)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if status >= http.StatusInternalServerError {
				return
			}

			_, _, err = s.Save(&Record{
				Key:         storeKey,
				Fingerprint: fp,
				Status:      status,
				ContentType: ww.Header().Get("Content-Type"),
				Body:        buf.Bytes(),
			})
			if err != nil {
				log.ErrorContext(r.Context(), "idempotency save failed", "key", key, "error", err)
			}
		})
	}
}

func fingerprint(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func replay(w http.ResponseWriter, rec *Record) {
	if rec.ContentType != "" {
		w.Header().Set("Content-Type", rec.ContentType)
	}
	w.Header().Set(HeaderReplayed, "true")
	w.WriteHeader(rec.Status)
	w.Write(rec.Body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"statusCode": status,
		"isSuccess":  false,
		"message":    msg,
		"errors":     []string{msg},
	})
}
