package normalize

import (
	"strings"
)

// Keyword is a case-sensitive fragment restored after lower-casing.
type Keyword struct {
	Lower string
	Cased string
}

// Keywords lists the backend's case-sensitive keywords in application order.
var Keywords = []Keyword{
	{Lower: "customlevel", Cased: "customLevel"},
	{Lower: "rootlogger", Cased: "rootLogger"},
	{Lower: "appenderref", Cased: "appenderRef"},
}

// SanitizeEnvKey converts an environment-style key to a dotted property key.
// The key is lower-cased, every underscore becomes a dot, and keyword
// fragments are restored to their cased form.
// Examples:
//   - "APP_LOGGING_STATUS" → "app.logging.status"
//   - "APP_LOGGING_ROOTLOGGER_LEVEL" → "app.logging.rootLogger.level"
//   - "APP_LOGGING_ROOTLOGGER_APPENDERREF_STDOUT_REF" → "app.logging.rootLogger.appenderRef.stdout.ref"
func SanitizeEnvKey(key string) string {
	result := strings.ReplaceAll(strings.ToLower(key), "_", ".")
	for _, kw := range Keywords {
		result = strings.ReplaceAll(result, kw.Lower, kw.Cased)
	}
	return result
}

// StripPrefix returns key without prefix and whether prefix was present.
// A key equal to the prefix yields an empty remainder and false.
func StripPrefix(key, prefix string) (string, bool) {
	if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
		return "", false
	}
	return key[len(prefix):], true
}

// SplitList splits a comma-separated list, trimming blanks around each item.
// Empty items are dropped.
// Examples:
//   - "er, erdb" → ["er", "erdb"]
//   - " , a,," → ["a"]
//   - "" → []
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		result = append(result, p)
	}
	return result
}
