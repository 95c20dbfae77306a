// Package service
package service

import (
	c "github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/service"
	"unicode/utf8"
)

type FieldValidator struct {
	Min, Max          int
	ErrShort, ErrLong *ApiStatus
}

// CheckString 按字符数校验长度
func (v *FieldValidator) CheckString(value string) *ApiStatus {
	length := utf8.RuneCountInString(value)
	if length > v.Max {
		return v.ErrLong
	}
	if length < v.Min {
		return v.ErrShort
	}
	return nil
}

func (v *FieldValidator) CheckInt(value int) *ApiStatus {
	if value > v.Max {
		return v.ErrLong
	}
	if value < v.Min {
		return v.ErrShort
	}
	return nil
}

var (
	playerNameValidator *FieldValidator
	searchValidator     *FieldValidator
	pageSizeValidator   *FieldValidator
)

func InitValidator(config *c.HttpServerLimit) {
	playerNameValidator = &FieldValidator{
		Min:      config.PlayerNameLengthMin,
		Max:      config.PlayerNameLengthMax,
		ErrShort: &ApiStatus{StatusName: "PLAYER_NAME_TOO_SHORT", Description: "player name is too short", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "PLAYER_NAME_TOO_LONG", Description: "player name is too long", HttpCode: BadRequest},
	}
	searchValidator = &FieldValidator{
		Min:     0,
		Max:     config.SearchLengthMax,
		ErrLong: &ApiStatus{StatusName: "QUERY_TOO_LONG", Description: "search query is too long", HttpCode: BadRequest},
	}
	pageSizeValidator = &FieldValidator{
		Min:      1,
		Max:      config.PageSizeMax,
		ErrShort: &ApiStatus{StatusName: "PAGE_SIZE_TOO_SMALL", Description: "page size must be positive", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "PAGE_SIZE_TOO_LARGE", Description: "page size is too large", HttpCode: BadRequest},
	}
}
