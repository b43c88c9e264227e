package geo

import (
	"fmt"
	"math"
)

// EarthRadiusMeters - средний радиус Земли, используемый формулой гаверсинуса
const EarthRadiusMeters = 6371e3

// Distance возвращает расстояние по большому кругу между двумя точками в метрах.
// Координаты не валидируются.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// FormatDistance форматирует расстояние: "80m" или "1.2km"
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%dm", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1fkm", meters/1000)
}

// FormatDistanceWithAway форматирует расстояние для карточки предмета
func FormatDistanceWithAway(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d meters away", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f kilometers away", meters/1000)
}
