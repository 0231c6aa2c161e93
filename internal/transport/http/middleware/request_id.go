package middleware

import (
	"net/http"

	"github.com/google/uuid"

	appctx "github.com/mgeraldo/contact-book/internal/pkg/context"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID propagates an incoming X-Request-Id, minting one when absent.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, reqID)

		ctx := appctx.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
