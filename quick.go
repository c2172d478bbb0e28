package logenv

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Azhovan/logenv/internal/normalize"
)

// LoggerShortNames returns the symbolic logger names listed under LoggersKey.
// Blank items are dropped; an absent key yields an empty slice.
func LoggerShortNames(cooked map[string]string) ([]string, error) {
	if cooked == nil {
		return nil, fmt.Errorf("%w: cooked map is nil", ErrInvalidArgument)
	}
	value, ok := cooked[LoggersKey]
	if !ok {
		return []string{}, nil
	}
	return normalize.SplitList(value), nil
}

// LoggerLongNames returns, sorted, the logger names declared with quick syntax
// (cooked keys of the form "quick.<name>").
func LoggerLongNames(cooked map[string]string) ([]string, error) {
	if cooked == nil {
		return nil, fmt.Errorf("%w: cooked map is nil", ErrInvalidArgument)
	}
	names := make([]string, 0)
	for key := range cooked {
		if name, ok := normalize.StripPrefix(key, QuickPrefix); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// QuickLevel returns the level declared for longName with quick syntax,
// or an empty string if longName has no quick entry.
func QuickLevel(longName string, cooked map[string]string) (string, error) {
	if longName == "" {
		return "", fmt.Errorf("%w: logger name is empty", ErrInvalidArgument)
	}
	if cooked == nil {
		return "", fmt.Errorf("%w: cooked map is nil", ErrInvalidArgument)
	}
	return cooked[QuickPrefix+longName], nil
}

// ExpandQuick rewrites every quick-syntax entry of cooked in place.
//
// In sorted long-name order, starting at 1, "quick.<name>=<level>" is replaced by
// "logger.quick<N>.name=<name>" and "logger.quick<N>.level=<level>", and
// "quick<N>" is appended to the LoggersKey registry. LoggersKey is always
// rewritten, to an empty string if the registry is empty. A bare "quick." entry
// names no logger and is dropped.
func ExpandQuick(cooked map[string]string) error {
	_, err := expandQuick(cooked, nil)
	return err
}

// expandQuick implements ExpandQuick, carrying original keys along when
// originalKeys is non-nil. It returns the generated symbolic names.
func expandQuick(cooked map[string]string, originalKeys map[string]string) ([]string, error) {
	registry, err := LoggerShortNames(cooked)
	if err != nil {
		return nil, err
	}
	longNames, err := LoggerLongNames(cooked)
	if err != nil {
		return nil, err
	}

	delete(cooked, QuickPrefix)
	if originalKeys != nil {
		delete(originalKeys, QuickPrefix)
	}

	generated := make([]string, 0, len(longNames))
	for i, longName := range longNames {
		quickKey := QuickPrefix + longName
		level := cooked[quickKey]
		symbolic := quickName + strconv.Itoa(i+1)
		prefix := "logger." + symbolic

		delete(cooked, quickKey)
		cooked[prefix+".name"] = longName
		cooked[prefix+".level"] = level

		if originalKeys != nil {
			origin := originalKeys[quickKey]
			delete(originalKeys, quickKey)
			originalKeys[prefix+".name"] = origin
			originalKeys[prefix+".level"] = origin
		}

		registry = append(registry, symbolic)
		generated = append(generated, symbolic)
	}

	cooked[LoggersKey] = strings.Join(registry, ",")
	return generated, nil
}
