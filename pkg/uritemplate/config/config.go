package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
)

// ErrInvalidConfig indicates a configuration failed validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes an expander and a catalog of link relations.
type Config struct {
	// Expander holds expansion settings.
	Expander ExpanderConfig `yaml:"expander" json:"expander"`

	// Relations maps a link relation name to its URI template.
	Relations map[string]string `yaml:"relations" json:"relations"`
}

// ExpanderConfig holds expansion settings as configuration strings.
type ExpanderConfig struct {
	// Missing is "keep" (default), "empty" or "error".
	Missing string `yaml:"missing" json:"missing"`

	// Encoding is "none" (default), "unreserved" or "reserved".
	Encoding string `yaml:"encoding" json:"encoding"`

	// ExplodeSeparator joins exploded list and map elements.
	// Nil keeps the expander default ",".
	ExplodeSeparator *string `yaml:"explode_separator" json:"explode_separator"`

	// MaxResults caps how many links one exploded relation may fan out to.
	// Zero means no cap.
	MaxResults int `yaml:"max_results" json:"max_results"`
}

// Validate checks the expander settings and every relation entry.
// All problems are reported together, joined with errors.Join.
func (c Config) Validate() error {
	var errs []error

	if _, err := uritemplate.ParseMissingAction(c.Expander.Missing); err != nil {
		errs = append(errs, fmt.Errorf("expander.missing: %w", err))
	}
	if _, err := uritemplate.ParseEncodingMode(c.Expander.Encoding); err != nil {
		errs = append(errs, fmt.Errorf("expander.encoding: %w", err))
	}
	if c.Expander.MaxResults < 0 {
		errs = append(errs, fmt.Errorf("expander.max_results: must not be negative, got %d", c.Expander.MaxResults))
	}

	for _, rel := range c.RelationNames() {
		if strings.TrimSpace(rel) == "" {
			errs = append(errs, errors.New("relations: empty relation name"))
			continue
		}
		if c.Relations[rel] == "" {
			errs = append(errs, fmt.Errorf("relations.%s: empty template", rel))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// ExpanderOptions converts the expander settings to uritemplate options.
func (c Config) ExpanderOptions() ([]uritemplate.Option, error) {
	missing, err := uritemplate.ParseMissingAction(c.Expander.Missing)
	if err != nil {
		return nil, fmt.Errorf("%w: expander.missing: %w", ErrInvalidConfig, err)
	}
	encoding, err := uritemplate.ParseEncodingMode(c.Expander.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: expander.encoding: %w", ErrInvalidConfig, err)
	}

	opts := []uritemplate.Option{
		uritemplate.WithMissingAction(missing),
		uritemplate.WithEncoding(encoding),
	}
	if c.Expander.ExplodeSeparator != nil {
		opts = append(opts, uritemplate.WithExplodeSeparator(*c.Expander.ExplodeSeparator))
	}
	if c.Expander.MaxResults > 0 {
		opts = append(opts, uritemplate.WithMaxResults(c.Expander.MaxResults))
	}
	return opts, nil
}

// NewExpander builds an expander from the settings.
func (c Config) NewExpander() (*uritemplate.Expander, error) {
	opts, err := c.ExpanderOptions()
	if err != nil {
		return nil, err
	}
	return uritemplate.NewExpander(opts...), nil
}

// RelationNames returns the configured relation names in sorted order.
func (c Config) RelationNames() []string {
	names := make([]string, 0, len(c.Relations))
	for rel := range c.Relations {
		names = append(names, rel)
	}
	slices.Sort(names)
	return names
}
