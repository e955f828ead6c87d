package util

import (
	"strconv"
)

// StringToUint64 converts string to uint64
func StringToUint64(str string) (uint64, error) {
	ui64, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, err
	}
	return ui64, nil
}

// StringToInt64 converts string to int64
func StringToInt64(str string) (int64, error) {
	i64, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, err
	}
	return i64, nil
}

// StringToUint32 converts string to uint32
func StringToUint32(str string) (uint32, error) {
	ui64, err := strconv.ParseUint(str, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(ui64), nil
}

// Uint64ToString coverts uint64 to string
func Uint64ToString(u uint64) string {
	return strconv.FormatUint(u, 10)
}
