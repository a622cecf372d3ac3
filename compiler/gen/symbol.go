package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lookup key prefixes of the numeric identifier enumeration.
const (
	TagPrefix   = "ID_"
	AttrPrefix  = "ATTR_"
	XLinkPrefix = "ATTR_XLINK_"
)

// Symbol returns the output identifier fragment for a raw name.
// Only '-' is rewritten; any other character is kept as is.
func Symbol(raw string) string {
	return strings.ReplaceAll(raw, "-", "_")
}

// LookupKey returns the name of the enumeration constant for raw under prefix,
// e.g. LookupKey("ID_", "font-face") == "ID_FONT_FACE". It is safe for
// concurrent use.
func LookupKey(prefix, raw string) string {
	// A cases.Caser keeps state and cannot be shared between goroutines.
	return prefix + cases.Upper(language.Und).String(Symbol(raw))
}

// GoName returns an exported Go identifier for raw.
func GoName(raw string) string {
	return inflect.Camelize(Symbol(raw))
}
