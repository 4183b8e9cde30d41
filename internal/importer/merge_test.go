package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oc-tools/ocfg/internal/document"
)

func TestMerge_AddsNewKeys(t *testing.T) {
	live := mustParse(t, `{"theme": "dark"}`)
	incoming := mustParse(t, `{"provider": {"anthropic": {"npm": "@ai-sdk/anthropic"}}}`)

	out, stats := Merge(live, incoming, nil)

	assert.Equal(t, Stats{Added: 1}, stats)
	assert.True(t, out.Has("theme"))
	assert.True(t, getPath(t, out, "provider", "anthropic").IsObject())
}

func TestMerge_SubMapsMergeKeywise(t *testing.T) {
	live := mustParse(t, `{"provider": {"openai": {"npm": "@ai-sdk/openai"}}}`)
	incoming := mustParse(t, `{"provider": {"anthropic": {"npm": "@ai-sdk/anthropic"}}}`)

	out, stats := Merge(live, incoming, nil)

	// Both providers survive: the sub-mapping is unioned, not replaced.
	provider := getPath(t, out, "provider")
	assert.ElementsMatch(t, []string{"openai", "anthropic"}, provider.Keys())
	assert.Equal(t, Stats{Added: 1}, stats)
}

func TestMerge_EqualValuesAreLeftAlone(t *testing.T) {
	live := mustParse(t, `{"provider": {"openai": {"npm": "@ai-sdk/openai"}}}`)
	incoming := live.Clone()

	consulted := false
	out, stats := Merge(live, incoming, func(Conflict) Decision {
		consulted = true
		return Overwrite
	})

	assert.False(t, consulted, "decide must not run for equal values")
	assert.Equal(t, Stats{}, stats)
	assert.True(t, out.Equal(live))
}

func TestMerge_ConflictSkipByDefault(t *testing.T) {
	live := mustParse(t, `{"provider": {"openai": {"npm": "old"}}}`)
	incoming := mustParse(t, `{"provider": {"openai": {"npm": "new"}}}`)

	out, stats := Merge(live, incoming, nil)

	assert.Equal(t, Stats{Skipped: 1}, stats)
	assert.Equal(t, "old", getPath(t, out, "provider", "openai", "npm").Str())
}

func TestMerge_ConflictOverwrite(t *testing.T) {
	live := mustParse(t, `{"provider": {"openai": {"npm": "old"}}}`)
	incoming := mustParse(t, `{"provider": {"openai": {"npm": "new"}}}`)

	var seen []string
	out, stats := Merge(live, incoming, func(c Conflict) Decision {
		seen = append(seen, c.Path)
		return Overwrite
	})

	assert.Equal(t, []string{"provider.openai"}, seen)
	assert.Equal(t, Stats{Overwritten: 1}, stats)
	assert.Equal(t, "new", getPath(t, out, "provider", "openai", "npm").Str())
}

func TestMerge_TopLevelConflictPath(t *testing.T) {
	live := mustParse(t, `{"theme": "dark"}`)
	incoming := mustParse(t, `{"theme": "light"}`)

	var seen []string
	Merge(live, incoming, func(c Conflict) Decision {
		seen = append(seen, c.Path)
		return Skip
	})

	assert.Equal(t, []string{"theme"}, seen)
}

func TestMerge_IsPure(t *testing.T) {
	live := mustParse(t, `{"provider": {"openai": {"npm": "old"}}}`)
	incoming := mustParse(t, `{"provider": {"openai": {"npm": "new"}}, "extra": 1}`)
	liveSnapshot := live.Clone()
	incomingSnapshot := incoming.Clone()

	out, _ := Merge(live, incoming, func(Conflict) Decision { return Overwrite })
	out.Set("mutated-after", document.Bool(true))

	assert.True(t, live.Equal(liveSnapshot), "live input mutated")
	assert.True(t, incoming.Equal(incomingSnapshot), "incoming input mutated")
}

func TestMerge_NonObjectLiveStartsFresh(t *testing.T) {
	incoming := mustParse(t, `{"a": 1}`)

	out, stats := Merge(document.Value{}, incoming, nil)

	require.True(t, out.IsObject())
	assert.Equal(t, Stats{Added: 1}, stats)
	assert.True(t, out.Has("a"))
}

func TestMerge_NonObjectIncomingIsNoop(t *testing.T) {
	live := mustParse(t, `{"a": 1}`)

	out, stats := Merge(live, document.String("junk"), nil)

	assert.Equal(t, Stats{}, stats)
	assert.True(t, out.Equal(live))
}

func TestMerge_EmptyIncomingSubMapAddsNothing(t *testing.T) {
	live := mustParse(t, `{"theme": "dark"}`)
	incoming := mustParse(t, `{"provider": {}, "permission": {}}`)

	out, stats := Merge(live, incoming, nil)

	assert.Equal(t, Stats{}, stats)
	assert.False(t, out.Has("provider"), "empty sub-map should not be materialized")
	assert.False(t, out.Has("permission"))
}

func TestMerge_ScalarProviderIsConflictNotSubMerge(t *testing.T) {
	// A live config with a scalar where a sub-mapping belongs is treated as
	// a plain top-level conflict rather than descended into.
	live := mustParse(t, `{"provider": "broken"}`)
	incoming := mustParse(t, `{"provider": {"openai": {}}}`)

	var seen []string
	out, _ := Merge(live, incoming, func(c Conflict) Decision {
		seen = append(seen, c.Path)
		return Overwrite
	})

	assert.Equal(t, []string{"provider"}, seen)
	assert.True(t, getPath(t, out, "provider").IsObject())
}
