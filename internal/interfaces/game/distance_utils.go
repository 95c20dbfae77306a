package game

import (
	"math"
)

const earthRadiusKilometers = 6371

// DistanceInKilometers 使用半正矢公式计算两点间大圆距离, 结果向下取整
func DistanceInKilometers(p1, p2 Position) int {
	lat1 := p1.Latitude * math.Pi / 180
	lat2 := p2.Latitude * math.Pi / 180
	deltaLat := lat2 - lat1
	deltaLon := (p2.Longitude - p1.Longitude) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	centralAngle := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(earthRadiusKilometers * centralAngle)
}

// FuelNeeded 计算航段耗油, 燃油效率加成限制在[0, 100]之间, 结果向上取整
func FuelNeeded(distance int, efficiencyBonus int) int {
	bonus := min(max(efficiencyBonus, 0), 100)
	return (distance*(100-bonus) + 99) / 100
}
