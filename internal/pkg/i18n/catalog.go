package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en"

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds localized form messages for every supported language.
type Catalog struct {
	tags     []language.Tag
	messages map[language.Tag]map[string]string
	builder  *catalog.Builder
	matcher  language.Matcher
}

//go:embed locales/*.yaml
var embeddedFS embed.FS

var defaultCatalog = mustLoadEmbedded()

// Default returns the process-wide embedded catalog.
func Default() *Catalog {
	return defaultCatalog
}

// LoadFromFS loads every locales/*.yaml file in fsys.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	c := &Catalog{
		messages: map[language.Tag]map[string]string{},
		builder:  catalog.NewBuilder(catalog.Fallback(language.Make(BaseLocale))),
	}

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := c.add(p, file); err != nil {
			return nil, err
		}
	}

	base := language.Make(BaseLocale)
	if _, ok := c.messages[base]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// The matcher treats the first tag as the default.
	sort.SliceStable(c.tags, func(i, j int) bool {
		if c.tags[i] == base {
			return true
		}
		if c.tags[j] == base {
			return false
		}
		return c.tags[i].String() < c.tags[j].String()
	})
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

func (c *Catalog) add(p string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); locale != want {
		return fmt.Errorf("catalog %s: locale %q must match file name %q", p, locale, want)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale: %w", p, err)
	}
	if _, exists := c.messages[tag]; exists {
		return fmt.Errorf("catalog %s: locale %q defined twice", p, locale)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", p)
	}

	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		messages[key] = value
		if err := c.builder.SetString(tag, key, value); err != nil {
			return fmt.Errorf("catalog %s: register %q: %w", p, key, err)
		}
	}
	c.messages[tag] = messages
	c.tags = append(c.tags, tag)
	return nil
}

// Match returns the supported tag closest to lang. Unknown or unparsable
// values resolve to the base locale.
func (c *Catalog) Match(lang string) language.Tag {
	desired, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return c.tags[0]
	}
	_, index, confidence := c.matcher.Match(desired)
	if confidence == language.No {
		return c.tags[0]
	}
	return c.tags[index]
}

// Supported lists the catalog's tags, base locale first.
func (c *Catalog) Supported() []language.Tag {
	out := make([]language.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// Has reports whether key is defined for the locale matched by lang,
// without falling back.
func (c *Catalog) Has(lang, key string) bool {
	_, ok := c.messages[c.Match(lang)][key]
	return ok
}

// Message renders key for lang, falling back to the base locale, and to the
// key itself when no catalog defines it.
func (c *Catalog) Message(lang, key string, args ...any) string {
	tag := c.Match(lang)
	if _, ok := c.messages[tag][key]; !ok {
		tag = c.tags[0]
		if _, ok := c.messages[tag][key]; !ok {
			return key
		}
	}
	return message.NewPrinter(tag, message.Catalog(c.builder)).Sprintf(key, args...)
}

func mustLoadEmbedded() *Catalog {
	c, err := LoadFromFS(embeddedFS)
	if err != nil {
		panic(err)
	}
	return c
}
