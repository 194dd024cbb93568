package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/tenancy/pkg/jwtx"
	"github.com/aussiebroadwan/tenancy/pkg/slogx"
)

// AuthnMiddleware rejects requests without a valid bearer token before the
// wrapped handler runs. A missing or malformed header is a 401, a token that
// fails verification for any reason is a 403.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := BearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeBearerChallenge(w, "")
				WriteError(w, http.StatusUnauthorized, StatusUnauthorized, "Token not provided")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "error", err)
				writeBearerChallenge(w, "invalid_token")
				WriteError(w, http.StatusForbidden, StatusForbidden, "Token is invalid or expired")
				return
			}

			ctx = ContextWithClaims(ctx, claims)
			ctx = slogx.WithContext(ctx, log.With("user_id", claims.UserID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an Authorization header of the form
// "Bearer <token>". The scheme is matched case-insensitively.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

// RFC 6750 challenge header.
func writeBearerChallenge(w http.ResponseWriter, code string) {
	if code == "" {
		w.Header().Set("WWW-Authenticate", `Bearer realm="tenancy"`)
		return
	}
	w.Header().Set("WWW-Authenticate", `Bearer realm="tenancy", error="`+code+`"`)
}
