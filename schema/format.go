package schema

import "regexp"

// Format checks are structural: a date-time must look like RFC 3339,
// but Feb 30 is not rejected against a real calendar. Formats used by
// the catalog that have no structural definition here (markdown,
// digital, ...) compile with a warning and are not enforced.
var formatChecks = map[string]*regexp.Regexp{
	"date-time": regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[Tt]\d{2}:\d{2}:\d{2}(\.\d+)?([Zz]|[+-]\d{2}:\d{2})$`),
	"date":      regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	"time":      regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d+)?([Zz]|[+-]\d{2}:\d{2})?$`),
	"duration":  regexp.MustCompile(`^P(\d+Y)?(\d+M)?(\d+W)?(\d+D)?(T(\d+H)?(\d+M)?(\d+(\.\d+)?S)?)?$`),
	"email":     regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`),
	"uri":       regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:\S+$`),
}

// KnownFormat reports whether the validator enforces a format token.
func KnownFormat(name string) bool {
	_, ok := formatChecks[name]
	return ok
}

func checkFormat(name, value string) bool {
	re, ok := formatChecks[name]
	if !ok {
		return true
	}
	return re.MatchString(value)
}
