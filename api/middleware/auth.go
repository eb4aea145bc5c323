package middleware

import (
	"net/http"
	"strings"

	"github.com/andrebarceloschagas/sistema/api/responses"
	pkgAuth "github.com/andrebarceloschagas/sistema/pkg/auth"
	"github.com/andrebarceloschagas/sistema/pkg/auth/session"
	"github.com/andrebarceloschagas/sistema/pkg/config"
	pkgerrors "github.com/andrebarceloschagas/sistema/pkg/errors"
	"github.com/andrebarceloschagas/sistema/pkg/logger"
	"github.com/andrebarceloschagas/sistema/pkg/visibility"
)

// Auth validates a bearer token and seeds the request context with the actor.
// Staff flag and capabilities ride in the claims, so no user lookup happens here.
func Auth(cfg config.JWTConfig, verifier session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			if claims.ID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
				return
			}

			if verifier != nil {
				ok, err := verifier.HasSession(r.Context(), claims.ID)
				if err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session"))
					return
				}
				if !ok {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session unavailable"))
					return
				}
			}

			actor := visibility.Actor{
				ID:           claims.UserID,
				IsStaff:      claims.IsStaff,
				Capabilities: claims.Capabilities,
			}
			ctx := WithActor(r.Context(), actor)
			ctx = WithAccessID(ctx, claims.ID)

			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
				if claims.IsStaff {
					ctx = logg.WithField(ctx, "is_staff", true)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

