package jsonrpc1

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var Val = validator.New(validator.WithRequiredStructEnabled())

// validateIfStruct validates v when it is a struct or a pointer to one.
// Other values pass unchecked.
func validateIfStruct(v any) error {
	err := Val.Struct(v)

	var invalid *validator.InvalidValidationError
	if err == nil || errors.As(err, &invalid) {
		return nil
	}

	return err
}

// validateParams checks that params form an ordered list and validates
// each struct element.
func validateParams(params any) error {
	if params == nil {
		return nil
	}

	v := reflect.ValueOf(params)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return fmt.Errorf("%w: got %s", ErrInvalidParams, v.Kind())
	}

	// []byte would otherwise be encoded as a base64 string.
	if v.Type().Elem().Kind() == reflect.Uint8 {
		return fmt.Errorf("%w: got %s", ErrInvalidParams, v.Type())
	}

	for i := 0; i < v.Len(); i++ {
		if err := validateIfStruct(v.Index(i).Interface()); err != nil {
			return fmt.Errorf("%w: param %d: %w", ErrInvalidParams, i, err)
		}
	}

	return nil
}
