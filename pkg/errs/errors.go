package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusBadGateway     = http.StatusBadGateway
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrValidation     = errors.New("Invalid request field")
	ErrNotLoggedIn    = errors.New("Unauthorized access")
	ErrNotFound       = errors.New("Resource not found")
	ErrNotAnImage     = errors.New("Uploaded file is not an image")
	ErrUploadFailed   = errors.New("Image upload failed")
)

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrValidation:     ErrStatusClient,
	ErrNotLoggedIn:    ErrStatusNotLoggedIn,
	ErrNotFound:       ErrStatusNotFound,
	ErrNotAnImage:     ErrStatusClient,
	ErrUploadFailed:   ErrStatusBadGateway,
}

func GetErrorStatusCode(err error) int {
	for sentinel, statusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return statusCode
		}
	}

	return ErrStatusInternalServer
}
