package employeeerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	// Duplicate create dijawab 400, bukan 409, mengikuti kontrak API lama.
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee already exists",
		http.StatusBadRequest,
	)
	ErrPhotoNotSet = apperror.New(
		apperror.CodeNotFound,
		"Profile photo not set for this employee",
		http.StatusNotFound,
	)
	ErrFolderNotSet = apperror.New(
		apperror.CodeInternalError,
		"Employee Drive folder not set for this employee",
		http.StatusInternalServerError,
	)
)
