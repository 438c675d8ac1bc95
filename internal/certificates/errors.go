package certificates

import "errors"

var (
	ErrInvalidInput = errors.New("title, issuer and date are required")
	ErrNotFound     = errors.New("certificate not found")
)
