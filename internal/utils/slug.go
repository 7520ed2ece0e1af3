package utils

import "github.com/gosimple/slug"

// Slugify делает из заголовка slug: "Summer Casting 2025!" -> "summer-casting-2025"
func Slugify(s string) string {
	return slug.Make(s)
}
