package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"account-list/core/logger"
	"account-list/core/storage"
	"account-list/feature/records"
	"account-list/feature/twitter"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrConfig indicates a configuration that could not be read or is incomplete.
var ErrConfig = errors.New("configuration error")

// EnvPrefix is prepended to every environment override (e.g. ACCOUNT_LIST_LOG_LEVEL).
const EnvPrefix = "ACCOUNT_LIST"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Credentials are the four OAuth secrets, kept at the top level of config.toml.
	twitter.Credentials `mapstructure:",squash"`
	// Lookup holds configuration for the account lookup service.
	Lookup twitter.Config `mapstructure:"lookup"`
	// Records holds configuration for where record collections live.
	Records records.Config `mapstructure:"records"`
	// Storage holds configuration for the object storage used by the bucket driver.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from config.toml, a .env file and
// environment variables, in increasing order of precedence.
// A missing config.toml is not an error; a malformed one is.
func LoadConfig(path string) (*Config, error) {
	// Ignore error if file doesn't exist
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: failed to read config file: %w", ErrConfig, err)
		}
	}

	// Map environment variables to nested keys (e.g. ACCOUNT_LIST_LOOKUP_BATCH_SIZE -> lookup.batch_size)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("%w: failed to decode config: %w", ErrConfig, err)
	}

	return &config, nil
}

// Validate reports settings the run cannot start without.
func (c *Config) Validate() error {
	if missing := c.Credentials.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: missing credentials %v", ErrConfig, missing)
	}
	if c.Lookup.BatchSize <= 0 {
		return fmt.Errorf("%w: lookup.batch_size must be positive, got %d", ErrConfig, c.Lookup.BatchSize)
	}
	if c.Lookup.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: lookup.requests_per_second must not be negative", ErrConfig)
	}
	if !c.Records.IsValidDriver() {
		return fmt.Errorf("%w: unknown records.driver %q", ErrConfig, c.Records.Driver)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")

		// Squashed structs share their parent's prefix
		if opts == "squash" && field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), prefix)
			continue
		}

		// Build the key
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
