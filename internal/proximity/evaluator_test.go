package proximity

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/dont_forget_tracker/internal/models"
	"github.com/shenikar/dont_forget_tracker/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// metersNorth сдвигает точку на север на заданное число метров
func metersNorth(loc models.Location, meters float64) *models.Location {
	degPerMeter := 180 / (geo.EarthRadiusMeters * math.Pi)
	return &models.Location{Latitude: loc.Latitude + meters*degPerMeter, Longitude: loc.Longitude}
}

func newItem(name string, loc models.Location, alertDistance float64) models.TrackedItem {
	return models.TrackedItem{
		ID:            uuid.New(),
		Name:          name,
		Location:      &loc,
		AlertDistance: alertDistance,
	}
}

var home = models.Location{Latitude: 40.0, Longitude: -75.0}

func TestEvaluate_NilLocationIsNoop(t *testing.T) {
	items := []models.TrackedItem{newItem("Keys", home, 50)}

	result := Evaluate(nil, items, models.NewNotifiedSet())

	assert.True(t, result.Empty())
}

func TestEvaluate_NoItemsIsNoop(t *testing.T) {
	result := Evaluate(metersNorth(home, 500), nil, nil)

	assert.True(t, result.Empty())
}

func TestEvaluate_Away(t *testing.T) {
	keys := newItem("Keys", home, 50)

	result := Evaluate(metersNorth(home, 80), []models.TrackedItem{keys}, models.NewNotifiedSet())

	require.Len(t, result.ToAlert, 1)
	assert.Equal(t, keys.ID, result.ToAlert[0].Item.ID)
	assert.InDelta(t, 80, result.ToAlert[0].Distance, 0.5)
	assert.Empty(t, result.ToReturn)
}

func TestEvaluate_NearbyUnchanged(t *testing.T) {
	keys := newItem("Keys", home, 50)

	result := Evaluate(metersNorth(home, 10), []models.TrackedItem{keys}, models.NewNotifiedSet())

	assert.True(t, result.Empty())
}

func TestEvaluate_AlreadyAwayUnchanged(t *testing.T) {
	keys := newItem("Keys", home, 50)
	keys.IsAway = true

	result := Evaluate(metersNorth(home, 300), []models.TrackedItem{keys}, models.NewNotifiedSet(keys.ID))

	assert.True(t, result.Empty())
}

func TestEvaluate_NotifiedSetGuardsDuplicates(t *testing.T) {
	keys := newItem("Keys", home, 50)

	// isAway еще не выставлен, но алерт уже отправлен
	result := Evaluate(metersNorth(home, 120), []models.TrackedItem{keys}, models.NewNotifiedSet(keys.ID))

	assert.Empty(t, result.ToAlert)
}

func TestEvaluate_Return(t *testing.T) {
	keys := newItem("Keys", home, 50)
	keys.IsAway = true

	result := Evaluate(metersNorth(home, 20), []models.TrackedItem{keys}, models.NewNotifiedSet(keys.ID))

	require.Len(t, result.ToReturn, 1)
	assert.Equal(t, keys.ID, result.ToReturn[0].Item.ID)
	assert.Empty(t, result.ToAlert)
}

func TestEvaluate_ReturnIgnoresNotifiedSet(t *testing.T) {
	keys := newItem("Keys", home, 50)
	keys.IsAway = true

	result := Evaluate(metersNorth(home, 20), []models.TrackedItem{keys}, models.NewNotifiedSet())

	require.Len(t, result.ToReturn, 1)
}

func TestEvaluate_BoundaryCountsAsNearby(t *testing.T) {
	keys := newItem("Keys", home, 50)
	current := metersNorth(home, 50)
	keys.AlertDistance = geo.Distance(current.Latitude, current.Longitude, home.Latitude, home.Longitude)

	result := Evaluate(current, []models.TrackedItem{keys}, models.NewNotifiedSet())
	assert.True(t, result.Empty())

	keys.IsAway = true
	result = Evaluate(current, []models.TrackedItem{keys}, models.NewNotifiedSet(keys.ID))
	require.Len(t, result.ToReturn, 1)
	assert.Empty(t, result.ToAlert)
}

func TestEvaluate_SkipsUntrackedItems(t *testing.T) {
	noLocation := models.TrackedItem{ID: uuid.New(), Name: "Wallet", AlertDistance: 50}
	noDistance := newItem("Glasses", home, 0)

	result := Evaluate(metersNorth(home, 5000), []models.TrackedItem{noLocation, noDistance}, models.NewNotifiedSet())

	assert.True(t, result.Empty())
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	keys := newItem("Keys", home, 50)
	items := []models.TrackedItem{keys}
	notified := models.NewNotifiedSet()

	Evaluate(metersNorth(home, 80), items, notified)

	assert.False(t, items[0].IsAway)
	assert.Empty(t, notified)
}

func TestEvaluate_MixedItems(t *testing.T) {
	near := newItem("Keys", home, 500)
	far := newItem("Wallet", home, 50)
	back := newItem("Phone", home, 500)
	back.IsAway = true

	result := Evaluate(metersNorth(home, 100), []models.TrackedItem{near, far, back}, models.NewNotifiedSet(back.ID))

	require.Len(t, result.ToAlert, 1)
	assert.Equal(t, "Wallet", result.ToAlert[0].Item.Name)
	require.Len(t, result.ToReturn, 1)
	assert.Equal(t, "Phone", result.ToReturn[0].Item.Name)
}
