// Package locale loads the UI message bundles, one JSON document per locale.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed messages/*.json
var messagesFS embed.FS

// DefaultLocale is used when the requested locale is not supported
const DefaultLocale = "en"

// Supported lists the locales with a bundled message file
var Supported = []string{"en", "es", "fr"}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
	language.French,
})

// Bundle holds the messages for one locale, keyed by dotted message id
type Bundle struct {
	Locale   string
	messages map[string]string
}

// Resolve maps a requested locale (e.g. "fr-CA", "es_MX") to a supported one
func Resolve(requested string) string {
	tag, err := language.Parse(strings.ReplaceAll(requested, "_", "-"))
	if err != nil {
		return DefaultLocale
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultLocale
	}
	return Supported[idx]
}

// Load returns the bundle for the requested locale. A bundle that cannot be
// loaded yields an empty message set and T falls back to raw ids.
func Load(requested string, logger *zap.Logger) *Bundle {
	return LoadFS(messagesFS, requested, logger)
}

// LoadFS loads a bundle from messages/<locale>.json in fsys
func LoadFS(fsys fs.FS, requested string, logger *zap.Logger) *Bundle {
	if logger == nil {
		logger = zap.NewNop()
	}
	loc := Resolve(requested)
	b := &Bundle{Locale: loc, messages: map[string]string{}}

	data, err := fs.ReadFile(fsys, "messages/"+loc+".json")
	if err != nil {
		logger.Warn("loading locale messages", zap.String("locale", loc), zap.Error(err))
		return b
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		logger.Warn("parsing locale messages", zap.String("locale", loc), zap.Error(err))
		return b
	}

	flatten("", tree, b.messages)
	return b
}

func flatten(prefix string, tree map[string]any, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// T returns the message for id with {name} placeholders replaced from
// name/value pairs. Missing messages render as the raw id.
func (b *Bundle) T(id string, pairs ...string) string {
	msg := id
	if b != nil {
		if m, ok := b.messages[id]; ok {
			msg = m
		}
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		msg = strings.ReplaceAll(msg, "{"+pairs[i]+"}", pairs[i+1])
	}
	return msg
}

// Has reports whether the bundle defines id
func (b *Bundle) Has(id string) bool {
	if b == nil {
		return false
	}
	_, ok := b.messages[id]
	return ok
}

// IDs returns all message ids in sorted order
func (b *Bundle) IDs() []string {
	if b == nil {
		return nil
	}
	ids := make([]string, 0, len(b.messages))
	for id := range b.messages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
