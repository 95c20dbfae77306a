// Package game
package game

import "github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"

// Position 经纬度坐标, 单位为度
type Position struct {
	Latitude  float64
	Longitude float64
}

func AirportPosition(airport *operation.Airport) Position {
	return Position{Latitude: airport.Latitude, Longitude: airport.Longitude}
}
