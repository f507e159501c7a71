package apperr

import (
	"errors"
	"fmt"
)

// Kinds compartidos por todos los módulos. Los handlers los mapean a
// código HTTP; los services los envuelven con contexto vía los helpers.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation")
	ErrBadState   = errors.New("invalid state")
)

func NotFound(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

func Conflict(format string, args ...any) error {
	return wrap(ErrConflict, format, args...)
}

func Validation(format string, args ...any) error {
	return wrap(ErrValidation, format, args...)
}

func BadState(format string, args ...any) error {
	return wrap(ErrBadState, format, args...)
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// Detail devuelve el mensaje sin el prefijo del kind, para el campo
// "detail" de las respuestas de error.
func Detail(err error) string {
	for _, kind := range []error{ErrNotFound, ErrConflict, ErrValidation, ErrBadState} {
		if errors.Is(err, kind) {
			msg := err.Error()
			prefix := kind.Error() + ": "
			if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
				return msg[len(prefix):]
			}
			return msg
		}
	}
	return err.Error()
}
