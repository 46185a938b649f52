/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mirror

import (
	"errors"
	"fmt"
	"reflect"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return EnrichError(ErrAlreadyExistsError, msg, args...)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

func ErrClassNotFound(t reflect.Type) error {
	return ErrNotFound("class «%v»", t)
}

func ErrFieldNotFound(owner reflect.Type, name string) error {
	return ErrNotFound("field «%s» in %v", name, owner)
}

var ErrInaccessibleError = errors.New("not accessible")

// InaccessibleError is returned when a declaration remains unusable
// after a best-effort elevation attempt.
//
// errors.Is(err, ErrInaccessibleError) reports true for it.
type InaccessibleError struct {
	Kind       DeclKind
	Owner      reflect.Type
	Name       string
	Visibility Visibility
}

// Returns error for specified declaration.
func ErrInaccessible(d IDeclaration) *InaccessibleError {
	return &InaccessibleError{
		Kind:       d.Kind(),
		Owner:      d.Owner(),
		Name:       d.Name(),
		Visibility: d.Visibility(),
	}
}

func (e *InaccessibleError) Error() string {
	return fmt.Sprintf("%s «%s» (%s) in %v is %v",
		e.Kind.TrimString(), e.Name, e.Visibility.TrimString(), e.Owner, ErrInaccessibleError)
}

func (e *InaccessibleError) Unwrap() error { return ErrInaccessibleError }
