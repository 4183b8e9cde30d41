package importer

import (
	"testing"
)

func TestParseTOMLSubset_Basic(t *testing.T) {
	input := `# Codex configuration
model = "o3"

[api]
base_url = "https://api.openai.com"
api_key = "sk-test"
verbose = true
disable_cache = false
`

	doc := ParseTOMLSubset([]byte(input))

	if got := getPath(t, doc, "model").Str(); got != "o3" {
		t.Errorf("model = %q", got)
	}
	if got := getPath(t, doc, "api", "base_url").Str(); got != "https://api.openai.com" {
		t.Errorf("api.base_url = %q", got)
	}
	if got := getPath(t, doc, "api", "verbose"); !got.BoolVal() {
		t.Error("api.verbose should be true")
	}
	if got := getPath(t, doc, "api", "disable_cache"); got.BoolVal() {
		t.Error("api.disable_cache should be false")
	}
}

func TestParseTOMLSubset_NestedSections(t *testing.T) {
	input := "[profiles.work]\nmodel = 'o3'\n"

	doc := ParseTOMLSubset([]byte(input))

	if got := getPath(t, doc, "profiles", "work", "model").Str(); got != "o3" {
		t.Errorf("profiles.work.model = %q", got)
	}
}

func TestParseTOMLSubset_UnquotedValueKeptAsString(t *testing.T) {
	doc := ParseTOMLSubset([]byte("timeout = 30\n"))

	v := getPath(t, doc, "timeout")
	if !v.IsString() || v.Str() != "30" {
		t.Errorf("timeout = %+v, want raw string \"30\"", v)
	}
}

func TestParseTOMLSubset_SkipsJunkLines(t *testing.T) {
	input := "# comment\n\nthis line is not an assignment\nkey = \"value\"\n"

	doc := ParseTOMLSubset([]byte(input))

	if doc.Len() != 1 {
		t.Errorf("Len() = %d, want 1", doc.Len())
	}
	if got := getPath(t, doc, "key").Str(); got != "value" {
		t.Errorf("key = %q", got)
	}
}

func TestParseTOMLSubset_EmptyInput(t *testing.T) {
	doc := ParseTOMLSubset(nil)
	if !doc.IsObject() || doc.Len() != 0 {
		t.Errorf("expected empty object, got %+v", doc)
	}
}
