package model

import "errors"

// ErrValidation marks request-shape failures (missing or malformed fields).
// Services wrap it with the concrete field message; handlers map it to 400.
var ErrValidation = errors.New("validation failed")
