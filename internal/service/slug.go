package service

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9 -]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphens      = regexp.MustCompile(`-+`)
	htmlTags         = regexp.MustCompile(`<[^>]*>`)
)

// GenerateSlug строит слаг из заголовка: нижний регистр, только [a-z0-9-],
// пробелы и повторные дефисы схлопываются, крайние дефисы обрезаются
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugHyphens.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// CalculateReadTime оценивает время чтения: ceil(слова без разметки / 200), минимум 1
func CalculateReadTime(body string) int {
	plain := htmlTags.ReplaceAllString(body, "")
	words := len(strings.Fields(plain))
	readTime := (words + 199) / 200
	if readTime < 1 {
		readTime = 1
	}
	return readTime
}
