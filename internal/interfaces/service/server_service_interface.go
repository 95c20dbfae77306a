// Package service
package service

type ServerServiceInterface interface {
	GetServerInfo() *ApiResponse[ResponseGetServerInfo]
}

type GameRules struct {
	StartMoney        int     `json:"start_money"`
	StartFuel         int     `json:"start_fuel"`
	StartMaxFuel      int     `json:"start_max_fuel"`
	MaxFlights        int     `json:"max_flights"`
	ArtifactsToWin    int     `json:"artifacts_to_win"`
	MinFlightDistance int     `json:"min_flight_distance"`
	EventChance       float64 `json:"event_chance"`
	EventPolicy       string  `json:"event_policy"`
}

type ServerLimits struct {
	PlayerNameLengthMin int `json:"player_name_length_min"`
	PlayerNameLengthMax int `json:"player_name_length_max"`
	SearchLengthMax     int `json:"search_length_max"`
	PageSizeMax         int `json:"page_size_max"`
}

type ResponseGetServerInfo struct {
	Version string        `json:"version"`
	Rules   *GameRules    `json:"rules"`
	Limits  *ServerLimits `json:"limits"`
}
