package geo

import "math"

// EarthRadiusKm радиус Земли, на котором считаются расстояния подбора водителей.
const EarthRadiusKm = 6371.0

const degToRad = math.Pi / 180

// GreatCircleKm расстояние по сферическому закону косинусов:
// R * arccos(sin φ1 sin φ2 + cos φ1 cos φ2 cos Δλ). Углы на входе в градусах.
func GreatCircleKm(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * degToRad
	phi2 := lat2 * degToRad
	deltaLambda := (lng2 - lng1) * degToRad

	cosAngle := math.Sin(phi1)*math.Sin(phi2) + math.Cos(phi1)*math.Cos(phi2)*math.Cos(deltaLambda)
	// ошибки округления для совпадающих точек дают 1.0000000000000002 и NaN в Acos
	cosAngle = math.Max(-1, math.Min(1, cosAngle))

	return EarthRadiusKm * math.Acos(cosAngle)
}

// IsValidCoordinate проверяет диапазоны широты и долготы.
func IsValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
