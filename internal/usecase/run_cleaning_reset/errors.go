package run_cleaning_reset

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("run_cleaning_reset: internal error")
