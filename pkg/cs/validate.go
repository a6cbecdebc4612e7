package cs

import (
	"reflect"
	"strings"
)

// Check returns value as a T when its dynamic type is exactly T. No
// conversion is attempted: a numeric string is not an int.
func Check[T any](name string, value any) (T, error) {
	typed, ok := value.(T)
	if !ok {
		var zero T

		return zero, &ValidationError{
			Param:    name,
			Expected: typeName(reflect.TypeOf((*T)(nil)).Elem()),
			Value:    value,
		}
	}

	return typed, nil
}

// CheckOneOf returns value unchanged when its dynamic type is one of expected.
func CheckOneOf(name string, value any, expected ...reflect.Type) (any, error) {
	actual := reflect.TypeOf(value)

	for _, typ := range expected {
		if actual == typ {
			return value, nil
		}
	}

	names := make([]string, 0, len(expected))
	for _, typ := range expected {
		names = append(names, typeName(typ))
	}

	return nil, &ValidationError{
		Param:    name,
		Expected: strings.Join(names, " or "),
		Value:    value,
	}
}

// CheckNonEmpty rejects empty identifiers, which would otherwise turn a
// single-resource path into the collection path.
func CheckNonEmpty(name, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", &ValidationError{Param: name, Expected: "non-empty string", Value: value}
	}

	return value, nil
}

// CheckPositive rejects values below one.
func CheckPositive(name string, value int) (int, error) {
	if value < 1 {
		return 0, &ValidationError{Param: name, Expected: "int greater than zero", Value: value}
	}

	return value, nil
}

// CheckNonNegative rejects negative values.
func CheckNonNegative(name string, value int) (int, error) {
	if value < 0 {
		return 0, &ValidationError{Param: name, Expected: "int not less than zero", Value: value}
	}

	return value, nil
}

func typeName(typ reflect.Type) string {
	if typ == nil {
		return "nil"
	}

	return typ.String()
}
