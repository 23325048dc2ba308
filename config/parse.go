package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Parse converts raw command-line values to the type of the field's default
// and checks the result against the field's rule.
func Parse(name string, raw []string) (any, error) {
	field, ok := Default[name]
	if !ok {
		return nil, fmt.Errorf("unknown key %s", name)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no value given for %s", name)
	}

	var value any
	switch field.Value.(type) {
	case string:
		value = strings.TrimSpace(raw[0])
	case int:
		n, err := strconv.Atoi(strings.TrimSpace(raw[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw[0])
		}
		value = n
	case bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw[0])
		}
		value = b
	case []string:
		value = raw
	default:
		return nil, fmt.Errorf("unsupported type %s for %s", field.typeName(), name)
	}

	if err := field.check(value); err != nil {
		return nil, err
	}
	return value, nil
}

func (f *Field) check(value any) error {
	if f.Rule == "" {
		return nil
	}
	if err := validate.Var(value, f.Rule); err != nil {
		return fmt.Errorf("invalid value %v for %s: must satisfy %s", value, f.Key, f.Rule)
	}
	return nil
}
