// Package sourceenv reads the process environment for logenv.
//
// Keys are returned untouched; logenv sanitizes them (APP_LOGGING_ROOTLOGGER_LEVEL → rootLogger.level).
//
// Example:
//
//	source := sourceenv.New(sourceenv.Options{})
//	builder := logenv.NewBuilder().WithEnvironment(source)
package sourceenv
