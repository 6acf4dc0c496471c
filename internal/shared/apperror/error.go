package apperror

import "fmt"

// AppError adalah error ber-kode yang dipetakan langsung ke response HTTP.
type AppError struct {
	Code       string
	Message    string // pesan yang aman ditampilkan ke klien
	HTTPStatus int
	Err        error // penyebab asli, opsional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supaya errors.Is/As bisa menembus ke penyebab asli.
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap seperti New tapi menyimpan penyebab asli; nil jika err nil.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}
