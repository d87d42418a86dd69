package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"tradeup/internal/api"
	"tradeup/internal/domain"
)

const maxBodyBytes = 1 << 20

// errRateLimited is returned by the throttle middleware.
var errRateLimited = errors.New("too many requests")

func errorEnvelope(ctx context.Context, code, message string) api.ErrorEnvelope {
	env := api.ErrorEnvelope{Error: api.Error{Code: code, Message: message}}
	if id := requestIDFromContext(ctx); id != "" {
		env.Error.RequestId = &id
	}
	return env
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope(r.Context(), code, message))
}

// fail maps err onto the error envelope. Unmapped errors are logged and
// reported without detail.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := mapDomainError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.log.WithError(err).WithField("request_id", requestIDFromContext(r.Context())).Error("request failed")
		msg = "internal server error"
	}
	writeError(w, r, status, code, msg)
}

// invalidBody answers request bodies the strict handler could not decode.
func invalidBody(w http.ResponseWriter, r *http.Request, _ error) {
	writeError(w, r, http.StatusBadRequest, "invalid_input", "invalid json body")
}

// invalidParam answers path and query parameters that failed to bind.
func invalidParam(w http.ResponseWriter, r *http.Request, err error) {
	msg := "invalid parameter"
	var pe *api.InvalidParamFormatError
	if errors.As(err, &pe) {
		msg = "invalid " + pe.ParamName
	}
	writeError(w, r, http.StatusBadRequest, "invalid_input", msg)
}

func mapDomainError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.Is(err, errRateLimited):
		return http.StatusTooManyRequests, "rate_limited"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrDeviceNotFound):
		return http.StatusNotFound, "device_not_found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, "invalid_transition"
	case errors.Is(err, domain.ErrReferralInvalid):
		return http.StatusUnprocessableEntity, "referral_invalid"
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func deref[T any](p *T) (v T) {
	if p != nil {
		v = *p
	}
	return v
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
