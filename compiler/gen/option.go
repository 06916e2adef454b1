package gen

import (
	"errors"
	"slices"
	"strings"
)

// Supported languages.
const (
	LanguageJava     = "java"
	LanguageGo       = "go"
	LanguageTemplate = "template"
)

// Supported pluralizers.
const (
	PluralizerSimple  = "simple"
	PluralizerInflect = "inflect"
)

var (
	languages   = []string{LanguageJava, LanguageGo, LanguageTemplate}
	pluralizers = []string{PluralizerSimple, PluralizerInflect}
)

// Config holds the generation settings.
type Config struct {
	// Target is the output directory.
	Target string `yaml:"target,omitempty"`
	// Language selects the rendering target.
	Language string `yaml:"language"`
	// Extension overrides the file extension of the language.
	Extension string `yaml:"extension,omitempty"`
	// Package is the package (Java) or package name (Go) of the generated
	// classes. Java output has no package clause when empty; Go output falls
	// back to the output directory name.
	Package string `yaml:"package,omitempty"`
	// Pluralizer names the strategy used for collection field names.
	Pluralizer string `yaml:"pluralizer"`
	// TemplateFile is the text/template used by the template language.
	TemplateFile string `yaml:"template,omitempty"`
	// Header is written as a comment at the top of each generated file.
	Header string `yaml:"header,omitempty"`
	// Workers bounds the number of files written concurrently.
	Workers int `yaml:"workers"`
}

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithLanguage selects the rendering target: "java", "go" or "template".
func WithLanguage(lang string) Option {
	return func(c *Config) error {
		lang = strings.ToLower(lang)
		if !slices.Contains(languages, lang) {
			return NewConfigError("Language", lang, "unsupported language; use java, go, or template")
		}
		c.Language = lang
		return nil
	}
}

// WithExtension overrides the file extension. A leading dot is dropped.
func WithExtension(ext string) Option {
	return func(c *Config) error {
		c.Extension = strings.TrimPrefix(ext, ".")
		return nil
	}
}

// WithPackage sets the package of the generated classes.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		c.Package = pkg
		return nil
	}
}

// WithPluralizer selects how collection field names are pluralized:
// "simple" appends an s, "inflect" uses English inflection rules.
func WithPluralizer(name string) Option {
	return func(c *Config) error {
		name = strings.ToLower(name)
		if !slices.Contains(pluralizers, name) {
			return NewConfigError("Pluralizer", name, "unsupported pluralizer; use simple or inflect")
		}
		c.Pluralizer = name
		return nil
	}
}

// WithTemplateFile sets the template used by the template language.
func WithTemplateFile(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("TemplateFile", nil, "template path cannot be empty")
		}
		c.TemplateFile = path
		return nil
	}
}

// WithHeader sets the file header comment.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithWorkers sets the number of parallel writers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "workers must be at least 1")
		}
		c.Workers = n
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() *Config {
	return &Config{
		Language:   LanguageJava,
		Pluralizer: PluralizerSimple,
		Workers:    1,
	}
}

// NewConfig creates a configuration from the defaults and opts, and checks
// that the combination is usable.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return c, nil
}

// Check reports settings that cannot work together.
func (c *Config) Check() error {
	if c.Language == LanguageTemplate {
		if c.TemplateFile == "" {
			return NewConfigError("TemplateFile", nil, "the template language requires a template file")
		}
		if c.Extension == "" {
			return NewConfigError("Extension", nil, "the template language requires a file extension")
		}
	}
	return nil
}
