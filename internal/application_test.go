package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
)

func TestNewSessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory storage is the default", func(t *testing.T) {
		// Given: a config without a storage type
		conf := &config.Config{}

		// When: building the repository
		sessions, closeStorage, err := newSessionRepository(ctx, conf)

		// Then: the in-memory registry is used and closing is a no-op
		require.NoError(t, err)
		assert.NotNil(t, sessions)
		assert.NoError(t, closeStorage())
	})

	t.Run("Unknown storage type is rejected", func(t *testing.T) {
		// Given: a config with a bogus storage type
		conf := &config.Config{Storage: config.Storage{Type: "postgres"}}

		// When: building the repository
		_, _, err := newSessionRepository(ctx, conf)

		// Then: the type is rejected
		require.ErrorIs(t, err, ErrUnknownStorageType)
	})
}
