// Package i18n looks up UI strings by namespace and dotted key.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales
var localeFS embed.FS

// DefaultLocale is used when nothing better matches, and as the fallback for
// keys missing from another locale.
const DefaultLocale = "en"

// Bundle holds every loaded locale.
type Bundle struct {
	names    []string
	messages map[string]map[string]map[string]string // locale -> namespace -> key -> text
	matcher  language.Matcher
}

// Load reads the locales compiled into the binary.
func Load() (*Bundle, error) {
	return LoadFS(localeFS, "locales")
}

// LoadFS reads root/<locale>/<namespace>.yaml files from fsys.
func LoadFS(fsys fs.FS, root string) (*Bundle, error) {
	dirs, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	b := &Bundle{messages: make(map[string]map[string]map[string]string)}
	var tags []language.Tag

	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		tag, err := language.Parse(d.Name())
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", d.Name(), err)
		}

		namespaces, err := loadLocale(fsys, path.Join(root, d.Name()))
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", d.Name(), err)
		}

		b.names = append(b.names, d.Name())
		b.messages[d.Name()] = namespaces
		tags = append(tags, tag)
	}

	if _, ok := b.messages[DefaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %q not found", DefaultLocale)
	}

	// the matcher falls back to its first tag
	for i, name := range b.names {
		if name == DefaultLocale {
			b.names[0], b.names[i] = b.names[i], b.names[0]
			tags[0], tags[i] = tags[i], tags[0]
			break
		}
	}
	b.matcher = language.NewMatcher(tags)

	return b, nil
}

func loadLocale(fsys fs.FS, dir string) (map[string]map[string]string, error) {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	namespaces := make(map[string]map[string]string)
	for _, f := range files {
		if f.IsDir() || path.Ext(f.Name()) != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, f.Name()))
		if err != nil {
			return nil, err
		}

		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name(), err)
		}

		keys := make(map[string]string)
		flatten("", raw, keys)
		namespaces[strings.TrimSuffix(f.Name(), ".yaml")] = keys
	}
	return namespaces, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case nil:
			out[key] = ""
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Locales lists the loaded locale names, sorted.
func (b *Bundle) Locales() []string {
	out := append([]string(nil), b.names...)
	sort.Strings(out)
	return out
}

// Translator picks the closest loaded locale for a POSIX or BCP 47 locale
// string such as "zh_CN.UTF-8" or "en-GB".
func (b *Bundle) Translator(locale string) *Translator {
	_, idx := language.MatchStrings(b.matcher, normalizeLocale(locale))
	return &Translator{bundle: b, locale: b.names[idx]}
}

func normalizeLocale(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// Translator resolves keys for one locale.
type Translator struct {
	bundle *Bundle
	locale string
}

func (t *Translator) Locale() string {
	return t.locale
}

// T returns the text for key in namespace ns. Missing keys fall back to the
// default locale and then to the key itself.
func (t *Translator) T(ns, key string) string {
	if s, ok := t.bundle.messages[t.locale][ns][key]; ok {
		return s
	}
	if s, ok := t.bundle.messages[DefaultLocale][ns][key]; ok {
		return s
	}
	return key
}

// Namespace binds the translator to one namespace.
func (t *Translator) Namespace(ns string) Namespace {
	return Namespace{t: t, ns: ns}
}

// Namespace is a translator bound to one namespace.
type Namespace struct {
	t  *Translator
	ns string
}

func (n Namespace) T(key string) string {
	if n.t == nil {
		return key
	}
	return n.t.T(n.ns, key)
}
