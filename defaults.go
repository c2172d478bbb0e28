package logenv

const (
	// PropertyPrefix selects system properties (and sanitized environment keys) for the backend.
	PropertyPrefix = "app.logging."

	// QuickPrefix marks a cooked entry declaring a named logger in one line.
	QuickPrefix = "quick."

	// LoggersKey holds the comma-separated registry of symbolic logger names.
	LoggersKey = "loggers"

	// quickName prefixes the symbolic names generated for quick-syntax loggers.
	quickName = "quick"
)

// defaultProperties log to the console at INFO when nothing is configured.
var defaultProperties = map[string]string{
	"status":                            "ERROR",
	"appender.stdout.type":              "Console",
	"appender.stdout.name":              "stdout",
	"appender.stdout.follow":            "true",
	"appender.stdout.layout.type":       "PatternLayout",
	"appender.stdout.layout.pattern":    "%d{yyyy-MM-dd HH:mm:ss.SSS}{UTC} %-5p %c - %m%n",
	"rootLogger.level":                  "INFO",
	"rootLogger.appenderRef.stdout.ref": "stdout",
}

// DefaultProperties returns a copy of the fixed default property set.
func DefaultProperties() map[string]string {
	result := make(map[string]string, len(defaultProperties))
	for k, v := range defaultProperties {
		result[k] = v
	}
	return result
}
