package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
)

// TagName is the struct tag read by Bind to map fields to property keys.
const TagName = "config"

// ErrInvalidTarget is returned when the bind target is not a non-nil pointer
// to a struct.
var ErrInvalidTarget = errors.New("bind target must be a non-nil pointer to a struct")

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Bind fills target's exported fields from the resolver, matching each field
// by its `config:"<key>"` tag. Fields without a tag, or whose key no source
// holds, are left untouched. Supported field kinds are string, bool, the
// integer kinds, and the float kinds.
//
// After binding, SetDefaults and Validate are invoked when target implements
// the Defaulter and Validator interfaces.
func Bind(resolver *Resolver, target any) error {
	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Pointer || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	structValue := value.Elem()
	structType := structValue.Type()

	for i := 0; i < structType.NumField(); i++ {
		fieldInfo := structType.Field(i)
		if !fieldInfo.IsExported() {
			continue
		}

		key, ok := fieldInfo.Tag.Lookup(TagName)
		if !ok {
			continue
		}

		raw, ok := resolver.Lookup(key)
		if !ok {
			continue
		}

		err := setField(structValue.Field(i), raw)
		if err != nil {
			return fmt.Errorf("binding %q: %w", key, err)
		}
	}

	targetDefaulter, isDefaulter := target.(Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			slog.Debug("defaults applied", "target", structType.Name())
		}
	}

	targetValidatable, isValidatable := target.(Validator)
	if isValidatable {
		err := targetValidatable.Validate()
		if err != nil {
			return fmt.Errorf("validating error: %w", err)
		}
	}

	return nil
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("parsing bool %q: %w", raw, err)
		}

		field.SetBool(parsed)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parsed, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("parsing int %q: %w", raw, err)
		}

		field.SetInt(parsed)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		parsed, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("parsing uint %q: %w", raw, err)
		}

		field.SetUint(parsed)
	case reflect.Float32, reflect.Float64:
		parsed, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("parsing float %q: %w", raw, err)
		}

		field.SetFloat(parsed)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}

	return nil
}
