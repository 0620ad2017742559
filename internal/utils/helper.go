package utils

import "strconv"

func StrPtr(s string) *string {
	return &s
}

func UintPtr(n uint) *uint {
	return &n
}

func ToUint(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	return uint(n), err
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
