package logenv_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Azhovan/logenv"
	"github.com/Azhovan/logenv/sourceenv"
	"github.com/Azhovan/logenv/sysprops"
)

// Example demonstrates building logging properties from system properties and the environment.
func Example() {
	store := sysprops.NewStore()
	store.Set("app.logging.status", "WARN")
	store.Set("app.logging.quick.net.example.db.Session", "DEBUG")

	environ := func() []string {
		return []string{
			"APP_LOGGING_STATUS=ERROR",
			"APP_LOGGING_ROOTLOGGER_LEVEL=INFO",
			"HOME=/home/app",
		}
	}

	cfg, err := logenv.NewBuilder().
		WithSystemProperties(sysprops.New(sysprops.Options{Store: store})).
		WithEnvironment(sourceenv.New(sourceenv.Options{Environ: environ})).
		Build(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	if _, err := cfg.WriteTo(os.Stdout); err != nil {
		log.Fatal(err)
	}

	// Output:
	// logger.quick1.level=DEBUG
	// logger.quick1.name=net.example.db.Session
	// loggers=quick1
	// rootLogger.level=INFO
	// status=WARN
}

// ExampleBuilder_Build_defaults demonstrates the default property set.
func ExampleBuilder_Build_defaults() {
	cfg, err := logenv.NewBuilder().Build(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("defaulted:", cfg.Defaulted)
	fmt.Println("rootLogger.level:", cfg.Properties["rootLogger.level"])

	// Output:
	// defaulted: true
	// rootLogger.level: INFO
}

// ExampleBuilder_WithResolver demonstrates substituting system-property values.
func ExampleBuilder_WithResolver() {
	store := sysprops.NewStore()
	store.Set("app.logging.appender.db.password", "enc:dG9wc2VjcmV0")

	decrypt := func(src logenv.PropertySource, key string) string {
		v := logenv.LookupValue(src, key)
		if strings.HasPrefix(v, "enc:") {
			return "topsecret"
		}
		return v
	}

	cfg, err := logenv.NewBuilder().
		WithSystemProperties(sysprops.New(sysprops.Options{Store: store})).
		WithResolver(decrypt).
		Build(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(cfg.Properties["appender.db.password"])

	// Output:
	// topsecret
}

// ExampleExpandQuick demonstrates quick-syntax expansion on a cooked map.
func ExampleExpandQuick() {
	cooked := map[string]string{
		"loggers":     "er",
		"quick.a.b.C": "WARN",
	}

	if err := logenv.ExpandQuick(cooked); err != nil {
		log.Fatal(err)
	}

	fmt.Println(cooked["loggers"])
	fmt.Println(cooked["logger.quick1.name"], cooked["logger.quick1.level"])

	// Output:
	// er,quick1
	// a.b.C WARN
}

// ExampleDumpEffective demonstrates inspecting properties with their sources.
func ExampleDumpEffective() {
	environ := func() []string { return []string{"APP_LOGGING_ROOTLOGGER_LEVEL=DEBUG"} }

	cfg, err := logenv.NewBuilder().
		WithEnvironment(sourceenv.New(sourceenv.Options{Environ: environ})).
		Build(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	if err := logenv.DumpEffective(os.Stdout, cfg, logenv.WithSources()); err != nil {
		log.Fatal(err)
	}

	// Output:
	// rootLogger.level: "DEBUG" (source: env:APP_LOGGING_ROOTLOGGER_LEVEL)
}
