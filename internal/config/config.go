package config

import (
	"errors"
	"strings"

	m "github.com/red-newt/propsmith/internal/model"
)

// Config is the top-level configuration struct for propsmith.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	// Components lists target component names matched directly by tag.
	Components []string `mapstructure:"components"`
	// Modules lists import sources whose bindings are targets. Matching is
	// exact string equality against the import path.
	Modules []string `mapstructure:"modules"`
	// Include, when non-empty, restricts matching to the listed tag names.
	Include []string `mapstructure:"include"`
	// Exclude removes the listed tag names from matching.
	Exclude []string `mapstructure:"exclude"`
	// Directives are the attributes enforced on matched elements.
	Directives []m.Directive `mapstructure:"directives"`
	// UpdateExisting overwrites attribute values that are already present.
	UpdateExisting bool `mapstructure:"update_existing"`
	// Extensions selects the file extensions to scan.
	Extensions []string `mapstructure:"extensions"`
	Priority   Priority `mapstructure:"priority"`
	ReportsDir string   `mapstructure:"reports_dir"`
}

// Priority holds the usage-count thresholds for attention tiers.
type Priority struct {
	High   int `mapstructure:"high"`
	Medium int `mapstructure:"medium"`
}

// Sentinel errors for configuration validation.
var (
	// ErrNoTargets indicates neither components nor modules are configured.
	ErrNoTargets = errors.New("components or modules must be configured")
	// ErrEmptyName indicates a blank entry in a name list.
	ErrEmptyName = errors.New("name lists must not contain empty entries")
	// ErrDirectiveName indicates a directive without a name.
	ErrDirectiveName = errors.New("directive name must not be empty")
	// ErrDirectiveKind indicates an unknown directive value kind.
	ErrDirectiveKind = errors.New("directive kind must be string or expression")
	// ErrDuplicateDirective indicates two directives share a name.
	ErrDuplicateDirective = errors.New("directive names must be unique")
	// ErrThresholds indicates non-positive or inverted priority thresholds.
	ErrThresholds = errors.New("priority thresholds must be positive and high >= medium")
	// ErrExtension indicates an extension without a leading dot.
	ErrExtension = errors.New("extensions must start with a dot")
)

// Validate checks the configuration for fatal problems. Any error here aborts
// the run before a single file is read.
func (c *Config) Validate() error {
	if len(c.Components) == 0 && len(c.Modules) == 0 {
		return ErrNoTargets
	}

	for _, list := range [][]string{c.Components, c.Modules, c.Include, c.Exclude} {
		for _, name := range list {
			if strings.TrimSpace(name) == "" {
				return ErrEmptyName
			}
		}
	}

	if err := c.validateDirectives(); err != nil {
		return err
	}

	if c.Priority.High <= 0 || c.Priority.Medium <= 0 || c.Priority.High < c.Priority.Medium {
		return ErrThresholds
	}

	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return ErrExtension
		}
	}

	return nil
}

func (c *Config) validateDirectives() error {
	seen := make(map[string]struct{}, len(c.Directives))

	for i, d := range c.Directives {
		if strings.TrimSpace(d.Name) == "" {
			return ErrDirectiveName
		}

		if _, dup := seen[d.Name]; dup {
			return ErrDuplicateDirective
		}

		seen[d.Name] = struct{}{}

		switch d.Kind {
		case m.ValueString, m.ValueExpression:
		case "":
			// Omitted kind defaults to a string literal.
			c.Directives[i].Kind = m.ValueString
		default:
			return ErrDirectiveKind
		}
	}

	return nil
}

// Dialect maps a file extension to the grammar that parses it. The bool
// result is false for extensions outside the scan set.
func (c *Config) Dialect(ext string) (m.Dialect, bool) {
	for _, e := range c.Extensions {
		if e == ext {
			return m.DialectForExt(ext), true
		}
	}

	return "", false
}
