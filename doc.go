// Package logenv derives a logging-backend property set from environment
// variables and system properties.
//
// Quick Start:
//
//	sysprops.Set("app.logging.rootLogger.level", "DEBUG")
//	sysprops.Set("app.logging.quick.net.example.Session", "WARN")
//
//	builder := logenv.NewBuilder().
//	    WithSystemProperties(sysprops.New(sysprops.Options{})).
//	    WithEnvironment(sourceenv.New(sourceenv.Options{}))
//
//	cfg, err := builder.Build(context.Background())
//	_, err = cfg.WriteTo(os.Stdout)
//
// System property keys must start with "app.logging."; environment keys with
// "APP_LOGGING_" and are sanitized (APP_LOGGING_ROOTLOGGER_LEVEL becomes
// rootLogger.level). A system property "app.logging.quick.<logger>=<level>"
// declares a named logger in one entry. When nothing is configured a console
// default set is produced.
//
// See example_test.go for detailed usage.
package logenv
