package importer

import (
	"strings"

	"github.com/oc-tools/ocfg/internal/document"
)

// AI SDK package names assigned to converted providers.
const (
	sdkAnthropic = "@ai-sdk/anthropic"
	sdkOpenAI    = "@ai-sdk/openai"
	sdkGoogle    = "@ai-sdk/google"
)

// Convert translates a loaded foreign document into OpenCode's schema:
// an object with "provider" and "permission" sub-mappings ready to be
// merged into a live config.
//
// Convert is pure. It never mutates data (inserted values are deep copies),
// and an unrecognized source type returns ok=false rather than an error,
// including "opencode" itself, so converting already-converted data is not
// possible by accident.
func Convert(sourceType string, data document.Value) (document.Value, bool) {
	if !data.IsObject() {
		return document.Value{}, false
	}

	switch sourceType {
	case TypeClaude:
		return convertClaude(data), true
	case TypeClaudeProviders:
		return convertClaudeProviders(data), true
	case TypeCodex:
		return convertCodex(data), true
	case TypeGemini:
		return convertGemini(data), true
	case TypeCCSwitch:
		return convertCCSwitch(data), true
	default:
		return document.Value{}, false
	}
}

// newResult builds the empty conversion skeleton.
func newResult() document.Value {
	out := document.NewObject()
	out.Set("provider", document.NewObject())
	out.Set("permission", document.NewObject())
	return out
}

// newProvider builds one provider block in OpenCode's schema.
func newProvider(sdk, displayName string, options document.Value) document.Value {
	p := document.NewObject()
	p.Set("npm", document.String(sdk))
	p.Set("name", document.String(displayName))
	p.Set("options", options)
	p.Set("models", document.NewObject())
	return p
}

func convertClaude(data document.Value) document.Value {
	out := newResult()

	if key, ok := data.Get("apiKey"); ok && key.IsString() {
		options := document.NewObject()
		options.Set("apiKey", document.String(key.Str()))
		provider, _ := out.Get("provider")
		provider.Set("anthropic", newProvider(sdkAnthropic, "Anthropic (Claude)", options))
	}

	if perms, ok := data.Get("permissions"); ok && perms.IsObject() {
		permission, _ := out.Get("permission")
		for _, tool := range perms.Keys() {
			value, _ := perms.Get(tool)
			permission.Set(tool, value.Clone())
		}
	}

	return out
}

func convertClaudeProviders(data document.Value) document.Value {
	out := newResult()
	provider, _ := out.Get("provider")

	for _, name := range data.Keys() {
		entry, _ := data.Get(name)
		if !entry.IsObject() {
			continue
		}

		options := document.NewObject()
		options.Set("baseURL", document.String(memberStr(entry, "", "baseUrl")))
		options.Set("apiKey", document.String(memberStr(entry, "", "apiKey")))

		displayName := memberStr(entry, name, "name")
		provider.Set(name, newProvider(sdkAnthropic, displayName, options))
	}

	return out
}

func convertCodex(data document.Value) document.Value {
	out := newResult()

	if api, ok := data.Get("api"); ok && api.IsObject() {
		options := document.NewObject()
		options.Set("baseURL", document.String(memberStr(api, "", "base_url")))
		options.Set("apiKey", document.String(memberStr(api, "", "api_key")))

		provider, _ := out.Get("provider")
		provider.Set("openai", newProvider(sdkOpenAI, "OpenAI (Codex)", options))
	}

	return out
}

func convertGemini(data document.Value) document.Value {
	out := newResult()

	if key, ok := data.Get("apiKey"); ok && key.IsString() {
		options := document.NewObject()
		options.Set("apiKey", document.String(key.Str()))
		provider, _ := out.Get("provider")
		provider.Set("google", newProvider(sdkGoogle, "Google (Gemini)", options))
	}

	return out
}

func convertCCSwitch(data document.Value) document.Value {
	out := newResult()
	provider, _ := out.Get("provider")

	providers, ok := data.Get("providers")
	if !ok || !providers.IsObject() {
		return out
	}

	for _, name := range providers.Keys() {
		entry, _ := providers.Get(name)
		if !entry.IsObject() {
			continue
		}

		options := document.NewObject()
		// cc-switch entries use either spelling depending on version.
		options.Set("baseURL", document.String(memberStr(entry, "", "baseUrl", "base_url")))
		options.Set("apiKey", document.String(memberStr(entry, "", "apiKey", "api_key")))

		displayName := memberStr(entry, name, "name")
		provider.Set(name, newProvider(inferSDK(name), displayName, options))
	}

	return out
}

// inferSDK guesses the AI SDK package from a provider name.
func inferSDK(providerName string) string {
	lower := strings.ToLower(providerName)
	switch {
	case strings.Contains(lower, "anthropic") || strings.Contains(lower, "claude"):
		return sdkAnthropic
	case strings.Contains(lower, "google") || strings.Contains(lower, "gemini"):
		return sdkGoogle
	default:
		return sdkOpenAI
	}
}

// memberStr returns the first present string member among keys, or def.
func memberStr(obj document.Value, def string, keys ...string) string {
	for _, key := range keys {
		if v, ok := obj.Get(key); ok && v.IsString() {
			return v.Str()
		}
	}
	return def
}
