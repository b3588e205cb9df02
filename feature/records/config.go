package records

// Config holds configuration for where record collections live.
type Config struct {
	// Driver selects the backend: "file" or "bucket".
	Driver string `mapstructure:"driver" default:"file"`
	// Dir is the directory (file driver) or object prefix (bucket driver) of collections.
	Dir string `mapstructure:"dir" default:"data"`
	// Extension is appended to the collection name to form the file or object name.
	Extension string `mapstructure:"extension" default:".csv"`
}

const (
	DriverFile   = "file"
	DriverBucket = "bucket"
)

// IsValidDriver checks if the configured driver is known.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverFile, DriverBucket:
		return true
	default:
		return false
	}
}
