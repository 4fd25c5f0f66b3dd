package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// loadFromEnv walks the config struct and overrides any field whose env tag
// names a set environment variable.
func loadFromEnv(config *Config) error {
	return overrideStruct(reflect.ValueOf(config).Elem())
}

func overrideStruct(val reflect.Value) error {
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if field.Kind() == reflect.Struct {
			if err := overrideStruct(field); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}
		envValue, exists := os.LookupEnv(envTag)
		if !exists {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(envValue)
		case reflect.Int:
			n, err := strconv.ParseInt(envValue, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer in %s: %w", envTag, err)
			}
			field.SetInt(n)
		case reflect.Bool:
			b, err := strconv.ParseBool(envValue)
			if err != nil {
				return fmt.Errorf("invalid boolean in %s: %w", envTag, err)
			}
			field.SetBool(b)
		default:
			return fmt.Errorf("unsupported config field type %s for %s", field.Kind(), envTag)
		}
	}
	return nil
}
