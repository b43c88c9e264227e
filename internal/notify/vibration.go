package notify

import "github.com/shenikar/dont_forget_tracker/internal/models"

// Имена паттернов вибрации
const (
	PatternAway     = "away"
	PatternReturned = "returned"
	PatternMultiple = "multiple"
	PatternDefault  = "default"
)

// Тайминги в миллисекундах: пауза, вибрация, пауза, вибрация...
var vibrationPatterns = map[string]map[string][]int{
	"ios": {
		PatternAway:     {0, 400, 200, 400},
		PatternReturned: {0, 200},
		PatternMultiple: {0, 400, 200, 400, 200, 400},
		PatternDefault:  {400},
	},
	"android": {
		PatternAway:     {0, 500, 300, 500},
		PatternReturned: {0, 200},
		PatternMultiple: {0, 500, 300, 500, 300, 500},
		PatternDefault:  {500},
	},
}

// VibrationFor возвращает паттерн для платформы; неизвестные имена дают паттерн по умолчанию
func VibrationFor(platform, pattern string) models.Vibration {
	patterns, ok := vibrationPatterns[platform]
	if !ok {
		patterns = vibrationPatterns["ios"]
	}
	timings, ok := patterns[pattern]
	if !ok {
		pattern = PatternDefault
		timings = patterns[PatternDefault]
	}
	return models.Vibration{
		Pattern:   pattern,
		TimingsMs: append([]int(nil), timings...),
	}
}
