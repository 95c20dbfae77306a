package utils

import "strconv"

func StrToInt(str string, defaultValue int) int {
	result, err := strconv.Atoi(str)
	if err != nil {
		return defaultValue
	}
	return result
}

// StrToUint 解析无符号主键, 解析失败或为0时返回ok=false
func StrToUint(str string) (value uint, ok bool) {
	result, err := strconv.ParseUint(str, 10, 0)
	if err != nil || result == 0 {
		return 0, false
	}
	return uint(result), true
}

// Clamp 将value限制在[low, high]之间
func Clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
