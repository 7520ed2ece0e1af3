package utils

import "strings"

// NormalizeEmail - email хранится и ищется в нижнем регистре без пробелов
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
