// Package catalog loads translated page copy and registers it with x/text.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const (
	// BaseLocale is the canonical source locale for catalogs.
	BaseLocale = "en-US"

	coreNamespace = "core"
)

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// LocaleCatalog stores all messages for one locale, grouped by namespace.
type LocaleCatalog struct {
	Locale     string
	Namespaces map[string]map[string]string
	Messages   map[string]string
}

// Bundle contains all locale catalogs loaded from a filesystem.
type Bundle struct {
	locales map[string]*LocaleCatalog
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads catalog files laid out as locales/<locale>/<namespace>.yaml.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]*LocaleCatalog{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var parsed catalogFile
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.addFile(p, parsed); err != nil {
			return nil, err
		}
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := bundle.checkCoverage(); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if namespace == "" {
		return fmt.Errorf("catalog %s: namespace is required", p)
	}
	if namespace != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", p, namespace, namespaceFromPath)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages map is required", p)
	}

	localeCatalog, ok := b.locales[locale]
	if !ok {
		localeCatalog = &LocaleCatalog{
			Locale:     locale,
			Namespaces: map[string]map[string]string{},
			Messages:   map[string]string{},
		}
		b.locales[locale] = localeCatalog
	}
	if _, exists := localeCatalog.Namespaces[namespace]; exists {
		return fmt.Errorf("catalog %s: namespace %q already defined for locale %q", p, namespace, locale)
	}

	namespaceMessages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if strings.HasPrefix(trimmedKey, coreNamespace+".") && namespace != coreNamespace {
			return fmt.Errorf("catalog %s: key %q must be defined in core namespace", p, trimmedKey)
		}
		if _, exists := localeCatalog.Messages[trimmedKey]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, trimmedKey, locale)
		}
		localeCatalog.Messages[trimmedKey] = value
		namespaceMessages[trimmedKey] = value
	}
	localeCatalog.Namespaces[namespace] = namespaceMessages
	return nil
}

// checkCoverage rejects translations that define keys the base locale lacks.
func (b *Bundle) checkCoverage() error {
	base := b.locales[BaseLocale]
	for _, locale := range b.Locales() {
		if locale == BaseLocale {
			continue
		}
		for key := range b.locales[locale].Messages {
			if _, ok := base.Messages[key]; !ok {
				return fmt.Errorf("locale %s defines key %q missing from %s", locale, key, BaseLocale)
			}
		}
	}
	return nil
}

// Register registers all catalog messages with x/text/message.
//
// Each locale is also registered under its base language so "pt" resolves
// to the "pt-BR" strings.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, _ := tag.Base(); base.String() != "" && base.String() != "und" {
			baseTag, err := language.Parse(base.String())
			if err == nil && baseTag != tag {
				tags = append(tags, baseTag)
			}
		}
		messages := b.Messages(locale)
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			for _, registerTag := range tags {
				if err := message.SetString(registerTag, key, messages[key]); err != nil {
					return fmt.Errorf("register %s %q: %w", registerTag, key, err)
				}
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all available locale identifiers.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Messages returns a locale message map with base-locale entries filling gaps.
func (b *Bundle) Messages(locale string) map[string]string {
	if b == nil {
		return map[string]string{}
	}
	out := map[string]string{}
	if base, ok := b.locales[BaseLocale]; ok {
		for key, value := range base.Messages {
			out[key] = value
		}
	}
	if catalog, ok := b.locales[strings.TrimSpace(locale)]; ok {
		for key, value := range catalog.Messages {
			out[key] = value
		}
	}
	return out
}

// Message returns one message value with base-locale fallback.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return "", false
	}
	if catalog, ok := b.locales[strings.TrimSpace(locale)]; ok {
		if value, exists := catalog.Messages[trimmedKey]; exists {
			return value, true
		}
	}
	if catalog, ok := b.locales[BaseLocale]; ok {
		value, exists := catalog.Messages[trimmedKey]
		return value, exists
	}
	return "", false
}

// Namespaces returns sorted namespace names for a locale.
func (b *Bundle) Namespaces(locale string) []string {
	if b == nil {
		return nil
	}
	catalog, ok := b.locales[strings.TrimSpace(locale)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(catalog.Namespaces))
	for namespace := range catalog.Namespaces {
		out = append(out, namespace)
	}
	sort.Strings(out)
	return out
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

// Coverage summarizes how much of the base locale one locale translates.
type Coverage struct {
	Locale     string
	BaseKeys   int
	Translated int
	Missing    []string
}

// Completion is the translated share of base keys as a percentage.
func (c Coverage) Completion() float64 {
	if c.BaseKeys == 0 {
		return 100
	}
	return float64(c.Translated) * 100 / float64(c.BaseKeys)
}

// Coverage reports translation coverage for every locale, sorted by locale.
func (b *Bundle) Coverage() []Coverage {
	if b == nil {
		return nil
	}
	base := b.locales[BaseLocale]
	var baseKeys []string
	if base != nil {
		for key := range base.Messages {
			baseKeys = append(baseKeys, key)
		}
		sort.Strings(baseKeys)
	}
	out := make([]Coverage, 0, len(b.locales))
	for _, locale := range b.Locales() {
		messages := b.locales[locale].Messages
		cov := Coverage{Locale: locale, BaseKeys: len(baseKeys), Missing: []string{}}
		for _, key := range baseKeys {
			if _, ok := messages[key]; ok {
				cov.Translated++
			} else {
				cov.Missing = append(cov.Missing, key)
			}
		}
		out = append(out, cov)
	}
	return out
}
