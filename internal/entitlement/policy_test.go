package entitlement

import (
	"testing"

	"github.com/shenikar/dont_forget_tracker/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_CanAddItem(t *testing.T) {
	policy := NewPolicy(catalog.Default(), 5)

	assert.NoError(t, policy.CanAddItem(false, 0))
	assert.NoError(t, policy.CanAddItem(false, 4))
	assert.NoError(t, policy.CanAddItem(true, 50))

	err := policy.CanAddItem(false, 5)
	require.ErrorIs(t, err, ErrItemLimitReached)
	assert.ErrorContains(t, err, "5-item limit")
}

func TestPolicy_CheckDistance(t *testing.T) {
	policy := NewPolicy(catalog.Default(), 5)

	for _, d := range []float64{25, 50, 100, 200} {
		assert.NoError(t, policy.CheckDistance(false, d))
	}
	assert.NoError(t, policy.CheckDistance(true, 75))

	err := policy.CheckDistance(false, 75)
	require.ErrorIs(t, err, ErrCustomDistance)
	assert.ErrorContains(t, err, "use 50m")
}

func TestPolicy_ItemLimitMessage(t *testing.T) {
	policy := NewPolicy(catalog.Default(), 5)

	assert.Equal(t, "3 items remaining in free version.", policy.ItemLimitMessage(2))
	assert.Equal(t, "You've reached your 5-item limit! Upgrade to Premium for unlimited items.", policy.ItemLimitMessage(5))
	assert.Equal(t, "You've reached your 5-item limit! Upgrade to Premium for unlimited items.", policy.ItemLimitMessage(7))
}
