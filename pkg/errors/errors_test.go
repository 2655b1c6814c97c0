package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", NewValidation("company_name is required"), http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("missing token"), http.StatusUnauthorized},
		{"not found", NewNotFound("contact not found"), http.StatusNotFound},
		{"upstream", NewUpstream("store failed", errors.New("502")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped validation", fmt.Errorf("decode: %w", NewValidation("bad")), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestWrapPreservesType(t *testing.T) {
	err := Wrap(NewNotFound("contact"), "lookup by email")
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "lookup by email: contact")

	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Equal(t, ErrorTypeInternal, TypeOf(Wrap(errors.New("raw"), "context")))
}

func TestPublicMessageHidesInternals(t *testing.T) {
	assert.Equal(t, "email must be a valid email", PublicMessage(NewValidation("email must be a valid email")))
	assert.Equal(t, "An internal error occurred", PublicMessage(NewUpstream("postgrest 500", errors.New("secret detail"))))
	assert.Equal(t, "An internal error occurred", PublicMessage(errors.New("raw")))
}
