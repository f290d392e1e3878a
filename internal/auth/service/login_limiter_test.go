package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscalhub/fiscalhub/internal/auth/domain"
	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
)

func TestLoginAttemptLimiter(t *testing.T) {
	t.Run("Success_BelowThreshold", func(t *testing.T) {
		limiter := NewLoginAttemptLimiter(5, 15*time.Minute)

		for i := 0; i < 4; i++ {
			limiter.RecordFailure("52998224725")
		}

		assert.NoError(t, limiter.Check("52998224725"))
	})

	t.Run("Error_LockedAfterMaxAttempts", func(t *testing.T) {
		limiter := NewLoginAttemptLimiter(5, 15*time.Minute)

		for i := 0; i < 5; i++ {
			limiter.RecordFailure("52998224725")
		}

		err := limiter.Check("52998224725")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrLocked)

		var rateLimited *domain.RateLimitedError
		require.ErrorAs(t, err, &rateLimited)
		assert.Equal(t, 15, rateLimited.RetryAfterMinutes())
	})

	t.Run("Success_OtherIdentifierUnaffected", func(t *testing.T) {
		limiter := NewLoginAttemptLimiter(5, 15*time.Minute)

		for i := 0; i < 5; i++ {
			limiter.RecordFailure("52998224725")
		}

		assert.NoError(t, limiter.Check("11144477735"))
	})

	t.Run("Success_ClearReleasesLockout", func(t *testing.T) {
		limiter := NewLoginAttemptLimiter(5, 15*time.Minute)

		for i := 0; i < 5; i++ {
			limiter.RecordFailure("52998224725")
		}
		limiter.Clear("52998224725")

		assert.NoError(t, limiter.Check("52998224725"))
	})

	t.Run("Success_LockoutExpires", func(t *testing.T) {
		limiter := NewLoginAttemptLimiter(2, 30*time.Millisecond)

		limiter.RecordFailure("52998224725")
		limiter.RecordFailure("52998224725")
		require.Error(t, limiter.Check("52998224725"))

		time.Sleep(50 * time.Millisecond)

		assert.NoError(t, limiter.Check("52998224725"))
	})

	t.Run("Success_WindowResetsStaleFailures", func(t *testing.T) {
		limiter := NewLoginAttemptLimiter(2, 30*time.Millisecond)

		limiter.RecordFailure("52998224725")
		time.Sleep(50 * time.Millisecond)
		limiter.RecordFailure("52998224725")

		assert.NoError(t, limiter.Check("52998224725"))
	})
}
