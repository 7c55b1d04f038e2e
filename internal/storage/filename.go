package storage

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SanitizeFilename приводит имя файла от клиента к безопасному виду:
// только ASCII [A-Za-z0-9_.-], пробелы превращаются в "_", разделители
// путей - в пробелы, точки и "_" по краям отрезаются. Результат может
// быть пустым, такое имя использовать нельзя.
func SanitizeFilename(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	ascii, _, err := transform.String(t, name)
	if err != nil {
		return ""
	}

	ascii = strings.NewReplacer("/", " ", "\\", " ").Replace(ascii)
	ascii = strings.Join(strings.Fields(ascii), "_")

	var b strings.Builder
	for _, r := range ascii {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "._")
}

// TimestampedName добавляет префикс YYYYMMDD_HHMMSS_ к уже очищенному имени.
func TimestampedName(now time.Time, sanitized string) string {
	return now.Format("20060102_150405") + "_" + sanitized
}

// Extension возвращает расширение без точки в нижнем регистре.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}
