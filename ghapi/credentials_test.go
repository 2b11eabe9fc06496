package ghapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCredentialManagerToken(t *testing.T) {
	t.Run("should exchange only once while the cached token is valid", func(t *testing.T) {
		calls := 0
		manager := newCredentialManager(func(ctx context.Context) (string, time.Time, error) {
			calls++
			return "tok-1", time.Now().Add(time.Hour), nil
		})

		for range 5 {
			token, err := manager.Token(context.Background())
			assert.Nil(t, err)
			assert.Equal(t, "tok-1", token)
		}

		assert.Equal(t, 1, calls)
	})

	t.Run("should refresh a token with less than a minute of validity left", func(t *testing.T) {
		calls := 0
		manager := newCredentialManager(func(ctx context.Context) (string, time.Time, error) {
			calls++
			if calls == 1 {
				return "stale", time.Now().Add(30 * time.Second), nil
			}
			return "fresh", time.Now().Add(time.Hour), nil
		})

		token, err := manager.Token(context.Background())
		assert.Nil(t, err)
		assert.Equal(t, "stale", token)

		// the stale token is still cached but below the validity floor
		token, err = manager.Token(context.Background())
		assert.Nil(t, err)
		assert.Equal(t, "fresh", token)
		assert.Equal(t, 2, calls)
	})

	t.Run("should propagate exchange failures", func(t *testing.T) {
		manager := newCredentialManager(func(ctx context.Context) (string, time.Time, error) {
			return "", time.Time{}, assert.AnError
		})

		_, err := manager.Token(context.Background())

		assert.NotNil(t, err)
	})

	t.Run("should retry the exchange after a failure", func(t *testing.T) {
		calls := 0
		manager := newCredentialManager(func(ctx context.Context) (string, time.Time, error) {
			calls++
			if calls == 1 {
				return "", time.Time{}, assert.AnError
			}
			return "tok-2", time.Now().Add(time.Hour), nil
		})

		_, err := manager.Token(context.Background())
		assert.NotNil(t, err)

		token, err := manager.Token(context.Background())
		assert.Nil(t, err)
		assert.Equal(t, "tok-2", token)
	})
}
