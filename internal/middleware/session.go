package middleware

import (
	"context"
	"net/http"

	"github.com/shopkit/adminpanel/internal/models"
)

// TokenService verifies session cookie tokens
type TokenService interface {
	VerifyToken(token string) (*models.TokenPayload, error)
}

type contextKey int

const (
	contextKeySessionUserID contextKey = iota
)

// Session puts the session user id into the request context when a valid
// session cookie is present. It never rejects the request itself: the
// handlers decide whether a session is required.
func Session(ts TokenService, cookieName string) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			payload, err := ts.VerifyToken(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSessionUserID(r.Context(), payload.UserID)))
		})
	}
}

// SessionUserID extracts the session user id from context
func SessionUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKeySessionUserID).(string)
	return id, ok
}

// WithSessionUserID returns ctx carrying the session user id
func WithSessionUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKeySessionUserID, id)
}
