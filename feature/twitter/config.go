package twitter

import "strings"

// Config holds configuration for the account lookup service.
type Config struct {
	// Endpoint is the users/lookup URL.
	Endpoint string `mapstructure:"endpoint" default:"https://api.twitter.com/1.1/users/lookup.json"`
	// BatchSize is the maximum number of references sent in one request.
	BatchSize int `mapstructure:"batch_size" default:"100"`
	// RequestsPerSecond paces consecutive requests. Zero disables pacing.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"1"`
	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// FoldNames matches screen names case-insensitively.
	FoldNames bool `mapstructure:"fold_names" default:"false"`
}

// Credentials are the OAuth 1.0a secrets for the lookup service.
// They are passed to the request signer unchanged.
type Credentials struct {
	// ConsumerKey is the application key.
	ConsumerKey string `mapstructure:"ck" default:""`
	// ConsumerSecret is the application secret.
	ConsumerSecret string `mapstructure:"cs" default:""`
	// AccessToken is the user access token.
	AccessToken string `mapstructure:"tk" default:""`
	// AccessSecret is the user access token secret.
	AccessSecret string `mapstructure:"ts" default:""`
}

// Missing returns the config keys of credentials that are empty.
func (c Credentials) Missing() []string {
	var missing []string
	for _, kv := range []struct{ key, value string }{
		{"ck", c.ConsumerKey},
		{"cs", c.ConsumerSecret},
		{"tk", c.AccessToken},
		{"ts", c.AccessSecret},
	} {
		if strings.TrimSpace(kv.value) == "" {
			missing = append(missing, kv.key)
		}
	}
	return missing
}
