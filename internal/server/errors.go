package server

import (
	"errors"
	"net/http"

	"github.com/Cornjebus/junie/internal/recommend"
)

// HTTPStatus returns the appropriate HTTP status code for an engine error.
// Invalid profiles are the caller's fault; a failed embedding capability is
// an upstream outage.
func HTTPStatus(err error) int {
	var invalid *recommend.ErrInvalidProfile
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	var unavailable *recommend.ErrEmbeddingUnavailable
	if errors.As(err, &unavailable) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
