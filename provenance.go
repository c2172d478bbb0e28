package logenv

import "sort"

// SourceDefault names the origin of entries taken from the default property set.
const SourceDefault = "default"

// Provenance records where each key of a built Config came from.
type Provenance struct {
	Fields []KeyProvenance
}

// KeyProvenance describes where a property's value came from.
type KeyProvenance struct {
	Key        string // Cooked key (e.g., "rootLogger.level")
	SourceName  string // Source identifier (e.g., "env:APP_LOGGING_ROOTLOGGER_LEVEL")
	OriginalKey string // Key as read from the source (e.g., "APP_LOGGING_ROOTLOGGER_LEVEL")
}

// Lookup returns the provenance of key.
func (p *Provenance) Lookup(key string) (KeyProvenance, bool) {
	if p == nil {
		return KeyProvenance{}, false
	}
	i := sort.Search(len(p.Fields), func(i int) bool { return p.Fields[i].Key >= key })
	if i < len(p.Fields) && p.Fields[i].Key == key {
		return p.Fields[i], true
	}
	return KeyProvenance{}, false
}

// SourceOf returns the source identifier of key, or an empty string.
func (p *Provenance) SourceOf(key string) string {
	kp, ok := p.Lookup(key)
	if !ok {
		return ""
	}
	return kp.SourceName
}

// newProvenance builds a Provenance sorted by key. The Key of each entry is
// taken from the map key.
func newProvenance(sources map[string]KeyProvenance) *Provenance {
	fields := make([]KeyProvenance, 0, len(sources))
	for key, kp := range sources {
		kp.Key = key
		fields = append(fields, kp)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return &Provenance{Fields: fields}
}

// sourceKey formats a provenance identifier such as "env:APP_LOGGING_STATUS".
func sourceKey(sourceName, originalKey string) string {
	if originalKey == "" {
		return sourceName
	}
	return sourceName + ":" + originalKey
}
