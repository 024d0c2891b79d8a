package ir

import "errors"

var (
	ErrDecode = errors.New("decode error")
)
