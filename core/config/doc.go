// Package config provides configuration management for account-list.
//
// It utilizes Viper for loading configuration from config.toml, an optional
// .env file, and environment variables prefixed with ACCOUNT_LIST_.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings:
//   - Credentials: the ck/cs/tk/ts OAuth secrets at the top level of config.toml
//   - Lookup: account lookup endpoint, batch size, pacing and name matching
//   - Records: collection driver (file or bucket), directory and extension
//   - Storage: S3/MinIO settings for the bucket driver
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
