package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, GetErrorStatusCode(ErrNotLoggedIn))
	assert.Equal(t, http.StatusBadRequest, GetErrorStatusCode(ErrValidation))
	assert.Equal(t, http.StatusBadRequest, GetErrorStatusCode(ErrNotAnImage))
	assert.Equal(t, http.StatusBadGateway, GetErrorStatusCode(ErrUploadFailed))
	assert.Equal(t, http.StatusNotFound, GetErrorStatusCode(ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, GetErrorStatusCode(ErrInternalServer))
}

func TestGetErrorStatusCode_WrappedAndUnknownErrors(t *testing.T) {
	wrapped := fmt.Errorf("publishing offer: %w", ErrUploadFailed)
	assert.Equal(t, http.StatusBadGateway, GetErrorStatusCode(wrapped))

	assert.Equal(t, http.StatusInternalServerError, GetErrorStatusCode(errors.New("connection reset")))
}
