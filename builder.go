package logenv

import (
	"context"
	"fmt"

	"dario.cat/mergo"

	"github.com/Azhovan/logenv/internal/logger"
)

// Builder derives a Config from a system-property source and an environment source.
// Sources are read on every Build; nothing is cached between builds.
// A Builder is safe to reuse but not to reconfigure concurrently with Build.
type Builder struct {
	system  Source
	env     Source
	resolve ValueResolver
}

// NewBuilder creates a Builder with no sources and the LookupValue resolver.
// A missing source contributes no entries.
func NewBuilder() *Builder {
	return &Builder{resolve: LookupValue}
}

// WithSystemProperties sets the system-property source.
// Its keys use the "app.logging." prefix and may use quick syntax.
func (b *Builder) WithSystemProperties(src Source) *Builder {
	b.system = src
	return b
}

// WithEnvironment sets the environment source.
// Its keys use the "APP_LOGGING_" form and are sanitized.
func (b *Builder) WithEnvironment(src Source) *Builder {
	b.env = src
	return b
}

// WithResolver sets how system-property values are obtained. Nil restores LookupValue.
func (b *Builder) WithResolver(fn ValueResolver) *Builder {
	if fn == nil {
		fn = LookupValue
	}
	b.resolve = fn
	return b
}

// Build reads both sources, cooks them, expands quick syntax in the
// system-property entries and merges the result; system properties win on
// conflicting keys. Blank values are dropped. If nothing remains, the default
// property set is used.
func (b *Builder) Build(ctx context.Context) (*Config, error) {
	log := logger.FromContext(ctx)

	// Step 1: System properties, cooked and quick-expanded
	sysRaw, sysName, err := loadSource(ctx, b.system)
	if err != nil {
		return nil, err
	}
	system, sysKeys, err := cookPropertiesWithKeys(PropertiesFromMap(sysRaw), b.resolve)
	if err != nil {
		return nil, err
	}
	generated, err := expandQuick(system, sysKeys)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("source", sysName).
		Int("raw", len(sysRaw)).
		Int("cooked", len(system)).
		Strs("quick_loggers", generated).
		Msg("cooked system properties")

	// Step 2: Environment, sanitized and cooked
	envRaw, envName, err := loadSource(ctx, b.env)
	if err != nil {
		return nil, err
	}
	env, envKeys, err := cookEnvironmentWithKeys(envRaw)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("source", envName).
		Int("raw", len(envRaw)).
		Int("cooked", len(env)).
		Msg("cooked environment")

	// Step 3: Environment first, system properties override
	merged := make(map[string]string, len(env)+len(system))
	if err := mergo.Merge(&merged, env); err != nil {
		return nil, fmt.Errorf("merge environment: %w", err)
	}
	if err := mergo.Merge(&merged, system, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merge system properties: %w", err)
	}

	origins := make(map[string]KeyProvenance, len(merged))
	for key := range merged {
		if _, ok := system[key]; ok {
			origins[key] = KeyProvenance{SourceName: sourceKey(sysName, sysKeys[key]), OriginalKey: sysKeys[key]}
		} else {
			origins[key] = KeyProvenance{SourceName: sourceKey(envName, envKeys[key]), OriginalKey: envKeys[key]}
		}
	}

	// Step 4: Drop blank values
	for key, value := range merged {
		if value == "" {
			delete(merged, key)
			delete(origins, key)
			log.Debug().Str("key", key).Msg("dropped blank property")
		}
	}

	// Step 5: Fall back to defaults when nothing was configured
	cfg := &Config{Properties: merged}
	if len(merged) == 0 {
		cfg.Properties = DefaultProperties()
		cfg.Defaulted = true
		for key := range cfg.Properties {
			origins[key] = KeyProvenance{SourceName: SourceDefault}
		}
		log.Debug().Msg("no logging properties configured, using defaults")
	}
	cfg.Provenance = newProvenance(origins)

	log.Debug().
		Int("properties", len(cfg.Properties)).
		Bool("defaulted", cfg.Defaulted).
		Msg("built logging properties")

	return cfg, nil
}

// loadSource loads src, treating a nil source as empty.
func loadSource(ctx context.Context, src Source) (map[string]string, string, error) {
	if src == nil {
		return map[string]string{}, "", nil
	}

	data, err := src.Load(ctx)
	if err != nil {
		return nil, src.Name(), fmt.Errorf("load source %s: %w", src.Name(), err)
	}
	if data == nil {
		data = map[string]string{}
	}
	return data, src.Name(), nil
}
