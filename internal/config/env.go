package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv exports the variables of the given .env files (default ".env")
// into the process environment. Variables already set win, and missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// loadFromEnv applies the env:"NAME" tags of config. Every malformed
// variable is reported, not only the first.
func loadFromEnv(config *Config) error {
	return applyEnv(reflect.ValueOf(config).Elem())
}

func applyEnv(section reflect.Value) error {
	var errs []error
	for i := 0; i < section.NumField(); i++ {
		field, meta := section.Field(i), section.Type().Field(i)
		if field.Kind() == reflect.Struct {
			errs = append(errs, applyEnv(field))
			continue
		}

		name := meta.Tag.Get("env")
		value, ok := os.LookupEnv(name)
		if name == "" || !ok {
			continue
		}
		if err := setFromEnv(field, value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func setFromEnv(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", value)
		}
		field.SetInt(int64(n))
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("expected a boolean, got %q", value)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}
	return nil
}
