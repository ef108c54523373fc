package config

import (
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvPrefix starts the name of every environment variable that sets an
// option. The rest of the name is the YAML key in upper case with dashes
// turned into underscores, for example SIMHOST_MAX_CYCLES.
const EnvPrefix = "SIMHOST_"

// LoadEnvFiles loads .env files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}

		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "loading %s", f)
		}
	}

	return nil
}

// EnvName returns the environment variable that sets the option with the
// given YAML key.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// ApplyEnv overrides options with the variables that lookup finds.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("yaml")
		if key == "" {
			continue
		}

		raw, ok := lookup(EnvName(key))
		if !ok {
			continue
		}

		if err := setField(v.Field(i), raw); err != nil {
			return &Error{Field: key, Reason: err.Error(), Err: err}
		}
	}

	return nil
}

func setField(f reflect.Value, raw string) error {
	switch f.Kind() {
	case reflect.String:
		f.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}

		f.SetBool(b)
	case reflect.Int:
		n, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return err
		}

		f.SetInt(n)
	case reflect.Uint64:
		n, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return err
		}

		f.SetUint(n)
	default:
		return errors.Errorf("unsupported kind %s", f.Kind())
	}

	return nil
}
