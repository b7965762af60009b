package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind mengelompokkan kegagalan operasi menjadi empat jenis yang
// dikembalikan ke caller: validation, not_found, conflict, dan storage.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindStorage    ErrorKind = "storage"
)

// AppError membawa jenis kegagalan plus pesan yang aman ditampilkan ke user.
// Error asli dari store (kalau ada) disimpan untuk logging, tidak pernah
// dikirim mentah ke caller.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validationf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// StorageErr membungkus error dari lapisan persistensi. Pesan low-level
// tidak dibocorkan ke caller.
func StorageErr(err error) *AppError {
	return &AppError{Kind: KindStorage, Message: "storage operation failed", Err: err}
}

// KindOf mengembalikan jenis error; error non-AppError dianggap storage.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

// StatusFor memetakan jenis error ke HTTP status code.
func StatusFor(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
