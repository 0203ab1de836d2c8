package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/service"
	"github.com/MKhiriev/trade-journal/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrInvalidUserID:   http.StatusBadRequest,
	ErrInvalidGzipBody: http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the status mapped from err. Client errors carry
// the error text; server errors only the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	logger.FromRequest(r).Debug().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}

// writeAuthError maps a credential validation failure to a response.
// Authentication failures all get the same body, so a client cannot tell an
// unknown username from a wrong password.
func (h *Handler) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var authErr *service.AuthError
	if !errors.As(err, &authErr) {
		log.Err(err).Msg("credential validation returned an unclassified error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	switch authErr.Kind {
	case service.AuthErrorValidation:
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
	case service.AuthErrorAuthentication:
		w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", h.realm))
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	case service.AuthErrorUnexpected:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	default:
		log.Error().Stringer("kind", authErr.Kind).Msg("unknown auth error kind")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
