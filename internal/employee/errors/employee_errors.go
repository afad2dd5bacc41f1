package employeeerrors

import (
	"net/http"

	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee number already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidJoinDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid join_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmployeeNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Employee is not waiting for approval",
		http.StatusConflict,
	)
	ErrEmployeeNotActive = apperror.New(
		apperror.CodeForbidden,
		"Employee account has not been approved",
		http.StatusForbidden,
	)
)
