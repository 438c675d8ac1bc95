package projects

import "errors"

var (
	ErrInvalidInput = errors.New("name, technology and description are required")
	ErrNotFound     = errors.New("project not found")
)
