package photostoreerrors

import (
	"net/http"

	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/apperror"
)

var (
	ErrEmptyPhoto = apperror.New(
		apperror.CodeInvalidInput,
		"Photo file is empty",
		http.StatusBadRequest,
	)
	ErrUnsupportedPhotoType = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported photo type, expected JPEG, PNG or WebP",
		http.StatusBadRequest,
	)
	ErrPhotoTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Photo exceeds the maximum allowed size",
		http.StatusBadRequest,
	)
	ErrPhotoNotFound = apperror.New(
		apperror.CodeNotFound,
		"Photo not found",
		http.StatusNotFound,
	)
)
