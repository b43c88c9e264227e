package state

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/dont_forget_tracker/internal/models"
	"github.com/shenikar/dont_forget_tracker/internal/proximity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []models.TrackedItem {
	loc := models.Location{Latitude: 40.0, Longitude: -75.0}
	return []models.TrackedItem{
		{ID: uuid.New(), Name: "Keys", IconID: "key", Location: &loc, AlertDistance: 50, CreatedAt: time.Now()},
		{ID: uuid.New(), Name: "Wallet", IconID: "wallet", Location: &loc, AlertDistance: 100, CreatedAt: time.Now()},
	}
}

func TestApplyTransitions_Away(t *testing.T) {
	items := sampleItems()
	cls := proximity.Classification{
		ToAlert: []proximity.Transition{{Item: items[0], Distance: 80}},
	}

	updated, notified := ApplyTransitions(items, cls, models.NewNotifiedSet())

	assert.True(t, updated[0].IsAway)
	assert.False(t, updated[1].IsAway)
	assert.True(t, notified.Has(items[0].ID))
	assert.Len(t, notified, 1)

	// исходные значения не тронуты
	assert.False(t, items[0].IsAway)
}

func TestApplyTransitions_Return(t *testing.T) {
	items := sampleItems()
	items[0].IsAway = true
	notified := models.NewNotifiedSet(items[0].ID)
	cls := proximity.Classification{
		ToReturn: []proximity.Transition{{Item: items[0], Distance: 10}},
	}

	updated, nextNotified := ApplyTransitions(items, cls, notified)

	assert.False(t, updated[0].IsAway)
	assert.Empty(t, nextNotified)
	assert.True(t, notified.Has(items[0].ID))
}

func TestApplyTransitions_NotifiedImpliesAway(t *testing.T) {
	items := sampleItems()
	cls := proximity.Classification{
		ToAlert: []proximity.Transition{{Item: items[0]}, {Item: items[1]}},
	}

	updated, notified := ApplyTransitions(items, cls, nil)

	for _, item := range updated {
		if notified.Has(item.ID) {
			assert.True(t, item.IsAway, item.Name)
		}
	}
	assert.Len(t, notified, 2)
}

func TestEditItem_ResetsTracking(t *testing.T) {
	items := sampleItems()
	items[0].IsAway = true
	notified := models.NewNotifiedSet(items[0].ID)
	originalLocation := items[0].Location
	originalCreatedAt := items[0].CreatedAt

	updated, nextNotified, edited, ok := EditItem(items, items[0].ID, models.ItemInput{
		Name:          "House keys",
		IconID:        "home",
		AlertDistance: 200,
	}, notified)

	require.True(t, ok)
	assert.Equal(t, "House keys", edited.Name)
	assert.Equal(t, "home", edited.IconID)
	assert.Equal(t, 200.0, edited.AlertDistance)
	assert.False(t, edited.IsAway)
	assert.Equal(t, originalLocation, edited.Location)
	assert.Equal(t, originalCreatedAt, edited.CreatedAt)
	assert.Equal(t, edited, updated[0])
	assert.False(t, nextNotified.Has(items[0].ID))
}

func TestEditItem_UnknownID(t *testing.T) {
	items := sampleItems()

	updated, _, _, ok := EditItem(items, uuid.New(), models.ItemInput{Name: "x"}, models.NewNotifiedSet())

	assert.False(t, ok)
	assert.Equal(t, items, updated)
}

func TestRemoveItem_PurgesNotified(t *testing.T) {
	items := sampleItems()
	items[0].IsAway = true
	items[1].IsAway = true
	notified := models.NewNotifiedSet(items[0].ID, items[1].ID)

	updated, nextNotified, ok := RemoveItem(items, items[0].ID, notified)

	require.True(t, ok)
	require.Len(t, updated, 1)
	assert.Equal(t, items[1], updated[0])
	assert.False(t, nextNotified.Has(items[0].ID))
	assert.True(t, nextNotified.Has(items[1].ID))
}

func TestRemoveItem_UnknownID(t *testing.T) {
	items := sampleItems()

	updated, _, ok := RemoveItem(items, uuid.New(), models.NewNotifiedSet())

	assert.False(t, ok)
	assert.Len(t, updated, 2)
}
