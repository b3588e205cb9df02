package records

import (
	"testing"

	"account-list/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	storageCfg := storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "lists"}

	t.Run("File", func(t *testing.T) {
		store, err := NewStore(Config{Driver: DriverFile, Dir: "data", Extension: ".csv"}, storageCfg)
		require.NoError(t, err)
		assert.IsType(t, &FileStore{}, store)
	})

	t.Run("Bucket", func(t *testing.T) {
		store, err := NewStore(Config{Driver: DriverBucket, Dir: "data", Extension: ".csv"}, storageCfg)
		require.NoError(t, err)
		require.IsType(t, &BucketStore{}, store)
		assert.Equal(t, "lists", store.(*BucketStore).bucket)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := NewStore(Config{Driver: "ftp"}, storageCfg)
		assert.ErrorContains(t, err, "ftp")
	})
}

func TestConfig_IsValidDriver(t *testing.T) {
	tests := []struct {
		driver string
		want   bool
	}{
		{DriverFile, true},
		{DriverBucket, true},
		{"", false},
		{"sql", false},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Driver: tt.driver}.IsValidDriver())
		})
	}
}
