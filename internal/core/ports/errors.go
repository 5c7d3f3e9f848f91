package ports

import (
	"fmt"
	"net/http"
	"strings"
)

const FallbackMessage = "Error en la solicitud"

// APIError is a non-2xx answer from the booking API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking api: %d: %s", e.Status, e.Message)
}

// IsAuth reports an invalid or expired bearer token.
func (e *APIError) IsAuth() bool {
	if e.Status == http.StatusUnauthorized || e.Status == 419 {
		return true
	}

	return strings.Contains(strings.ToLower(e.Message), "unauthenticated")
}
