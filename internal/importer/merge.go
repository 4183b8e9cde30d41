package importer

import "github.com/oc-tools/ocfg/internal/document"

// Decision is a caller's answer to one merge conflict.
type Decision int

const (
	// Skip keeps the live value. This is the default when no decide
	// function is supplied: a merge never silently overwrites.
	Skip Decision = iota
	// Overwrite replaces the live value with the incoming one.
	Overwrite
)

// Conflict describes one key where the live document and the incoming
// document disagree.
type Conflict struct {
	// Path is the colliding key, "provider.anthropic" style for the merged
	// sub-mappings, a bare key at the top level.
	Path string

	// Existing is the live document's value.
	Existing document.Value

	// Incoming is the converted document's value.
	Incoming document.Value
}

// DecideFunc resolves a conflict. It is called once per colliding key.
type DecideFunc func(Conflict) Decision

// Stats summarizes a merge.
type Stats struct {
	Added       int
	Overwritten int
	Skipped     int
}

// mergedSubMaps are the sub-mappings merged key-wise instead of treated as
// single top-level values.
var mergedSubMaps = map[string]bool{
	"provider":   true,
	"permission": true,
}

// Merge unions a converted document into a live document: key-wise at the
// top level and inside the "provider" and "permission" sub-mappings. On a
// collision where the two sides differ, decide picks overwrite or skip;
// keys whose values are already deeply equal are left alone without
// consulting decide.
//
// Merge is pure: it returns a fresh document and mutates neither input.
// A nil decide skips every conflict.
func Merge(live, incoming document.Value, decide DecideFunc) (document.Value, Stats) {
	if decide == nil {
		decide = func(Conflict) Decision { return Skip }
	}

	var out document.Value
	if live.IsObject() {
		out = live.Clone()
	} else {
		out = document.NewObject()
	}

	var stats Stats
	if !incoming.IsObject() {
		return out, stats
	}

	for _, key := range incoming.Keys() {
		value, _ := incoming.Get(key)

		existing, present := out.Get(key)
		if mergedSubMaps[key] && value.IsObject() && (!present || existing.IsObject()) {
			mergeSubMap(out, key, value, decide, &stats)
			continue
		}

		mergeKey(out, key, key, value, decide, &stats)
	}

	return out, stats
}

func mergeSubMap(out document.Value, key string, incoming document.Value, decide DecideFunc, stats *Stats) {
	target, present := out.Get(key)
	if !present {
		if incoming.Len() == 0 {
			return
		}
		target = document.NewObject()
		out.Set(key, target)
	}

	for _, inner := range incoming.Keys() {
		value, _ := incoming.Get(inner)
		mergeKey(target, key+"."+inner, inner, value, decide, stats)
	}
}

func mergeKey(target document.Value, path, key string, incoming document.Value, decide DecideFunc, stats *Stats) {
	existing, present := target.Get(key)
	if !present {
		target.Set(key, incoming.Clone())
		stats.Added++
		return
	}
	if existing.Equal(incoming) {
		return
	}

	switch decide(Conflict{Path: path, Existing: existing, Incoming: incoming}) {
	case Overwrite:
		target.Set(key, incoming.Clone())
		stats.Overwritten++
	default:
		stats.Skipped++
	}
}
