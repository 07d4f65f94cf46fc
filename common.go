// Package xlsq loads the decoded data grid of an Excel spreadsheet into a
// sqlite database: the first row provides the column names, the remaining
// rows the data.
package xlsq

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveDiacritics transforms, for example, "žůžo" into "zuzo"
func RemoveDiacritics(original string) (result string) {
	isMn := func(r rune) bool {
		return unicode.Is(unicode.Mn, r) // Mn: nonspacing marks
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ = transform.String(t, original)

	return
}

// SanitizeName turns a spreadsheet header into a safe SQL identifier:
// diacritics are stripped, anything but letters, digits and underscores
// becomes an underscore, and a leading digit gets one prepended.
func SanitizeName(name string) string {
	clean := func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return unicode.ToLower(r)
		case r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}

	name = strings.Map(clean, RemoveDiacritics(strings.TrimSpace(name)))
	if name == "" {
		return "_"
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}

// TableName derives a table name from an output file path: the base name
// without its extension, sanitized.
func TableName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	return SanitizeName(base)
}
