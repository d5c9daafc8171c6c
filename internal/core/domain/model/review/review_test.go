package review_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	t.Run("starts pending moderation", func(t *testing.T) {
		r, err := review.NewReview(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			4, "solid, arrived intact", time.Now(),
		)
		require.NoError(t, err)

		assert.Equal(t, review.ModerationPending, r.Status())
		assert.Equal(t, 4, r.Rating())
	})

	t.Run("rejects scores outside the range", func(t *testing.T) {
		for _, score := range []int{0, 6} {
			_, err := review.NewReview(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				score, "", time.Now(),
			)
			require.Error(t, err, "score %d", score)
		}
	})

	t.Run("requires all references", func(t *testing.T) {
		_, err := review.NewReview(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			3, "", time.Now(),
		)
		require.Error(t, err)
	})
}

func TestReview_Moderation(t *testing.T) {
	r, err := review.NewReview(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		2, "", time.Now(),
	)
	require.NoError(t, err)

	r.Approve()
	assert.Equal(t, review.ModerationApproved, r.Status())

	r.Reject()
	assert.Equal(t, review.ModerationRejected, r.Status())
}

func TestModerationStatusFromString(t *testing.T) {
	status, err := review.ModerationStatusFromString("approved")
	require.NoError(t, err)
	assert.Equal(t, review.ModerationApproved, status)

	_, err = review.ModerationStatusFromString("hidden")
	require.Error(t, err)
}

func TestDuplicateReviewError(t *testing.T) {
	err := review.NewDuplicateReviewError(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.ErrorIs(t, err, review.ErrDuplicateReview)
}
