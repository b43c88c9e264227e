package notify

import (
	"testing"

	"github.com/shenikar/dont_forget_tracker/internal/proximity"
	"github.com/stretchr/testify/assert"
)

func TestMultipleAwayNotification_TwoItemsListsBoth(t *testing.T) {
	n := MultipleAwayNotification([]proximity.Transition{transition("Keys", 80), transition("Wallet", 1200.6)})

	assert.Equal(t, "⚠️ Don't Forget 2 Items!", n.Title)
	assert.Equal(t, "You're away from Keys (80m), Wallet (1201m)", n.Body)
	assert.Equal(t, 2, n.Data["itemCount"])
	assert.Len(t, n.Data["itemIds"], 2)
}

func TestMultipleAwayNotification_Truncates(t *testing.T) {
	ts := []proximity.Transition{
		transition("Keys", 80),
		transition("Wallet", 90),
		transition("Glasses", 100),
		transition("Phone", 110),
		transition("Watch", 120),
	}

	n := MultipleAwayNotification(ts)

	assert.Equal(t, "You're away from Keys (80m), Wallet (90m) and 3 more", n.Body)
	assert.Equal(t, 5, n.Badge)
}

func TestAwayNotification_RoundsDistance(t *testing.T) {
	keys := transition("Keys", 79.5)

	n := AwayNotification(keys)

	assert.Equal(t, "You're 80m away from your Keys", n.Body)
	assert.Equal(t, 80, n.Data["distance"])
	assert.Equal(t, keys.Item.ID.String(), n.Data["itemId"])
	assert.Equal(t, "high", n.Priority)
}

func TestReturnedNotification(t *testing.T) {
	keys := transition("Keys", 10)

	n := ReturnedNotification(keys.Item)

	assert.Equal(t, "You're back within range of your Keys", n.Body)
	assert.Equal(t, 0, n.Badge)
}

func TestVibrationFor(t *testing.T) {
	assert.Equal(t, []int{0, 500, 300, 500}, VibrationFor("android", PatternAway).TimingsMs)
	assert.Equal(t, []int{0, 400, 200, 400, 200, 400}, VibrationFor("ios", PatternMultiple).TimingsMs)

	unknown := VibrationFor("android", "disco")
	assert.Equal(t, PatternDefault, unknown.Pattern)
	assert.Equal(t, []int{500}, unknown.TimingsMs)

	// неизвестная платформа использует паттерны iOS
	assert.Equal(t, []int{0, 200}, VibrationFor("webos", PatternReturned).TimingsMs)
}
