package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/cabin_portal/internal/core/services"
)

type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type sessionIDKey struct{}

// Sessions issues the portal session cookie and puts its id on the context.
// A bearer header is honoured for API clients that keep their own token.
func Sessions(cfg CookieConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := ""
			if c, err := r.Cookie(cfg.Name); err == nil {
				if _, err := uuid.Parse(c.Value); err == nil {
					sid = c.Value
				}
			}

			if sid == "" {
				sid = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cfg.Name,
				Value:    sid,
				Path:     "/",
				MaxAge:   int(cfg.TTL.Seconds()),
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), sessionIDKey{}, sid)
			if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok && token != "" {
				ctx = services.WithExplicitToken(ctx, strings.TrimSpace(token))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionID(ctx context.Context) string {
	sid, _ := ctx.Value(sessionIDKey{}).(string)
	return sid
}

// RequireSession only checks that a token exists; the API validates it on use.
func RequireSession(auth *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.Token(r.Context(), SessionID(r.Context()))
			if err != nil {
				handleError(w, r, err)
				return
			}

			if token == "" {
				redirect(w, r, services.LoginURL(returnPath(r)), "", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin fetches the user's roles before serving. Non-admins go to
// their account page, a failed lookup sends them back to login.
func RequireAdmin(auth *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := SessionID(r.Context())

			sess, err := auth.RequireAdmin(r.Context(), sid)
			switch {
			case err == nil:
			case errors.Is(err, services.ErrForbidden), errors.Is(err, context.Canceled):
				handleError(w, r, err)
				return
			default:
				if !errors.Is(err, services.ErrUnauthenticated) {
					log.Printf("Role lookup failed for session %s: %v", sid, err)
					if err := auth.Expire(r.Context(), sid); err != nil {
						log.Printf("Failed to clear session %s: %v", sid, err)
					}
				}

				redirect(w, r, services.LoginURL(returnPath(r)), msgExpired, nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(services.WithSession(r.Context(), sess)))
		})
	}
}
