package http

import (
	"net/http"

	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/utils"
)

// withBasicAuth validates the Basic credentials of the request and stores
// the verified identity in the request context under [utils.IdentityCtxKey].
//
// Rejections:
//   - 400 Bad Request when the Authorization header is missing or malformed.
//   - 401 Unauthorized with a WWW-Authenticate challenge when the credentials
//     do not match.
//   - 500 Internal Server Error when validation could not be completed.
func (h *Handler) withBasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity, err := h.services.AuthService.ValidateCredentials(ctx, r.Header.Get("Authorization"))
		if err != nil {
			h.writeAuthError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().Str("user_id", identity.UserID.String()).Msg("credentials validated")

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
