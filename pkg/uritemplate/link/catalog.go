package link

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
	"github.com/randalmurphal/uritemplate/pkg/uritemplate/config"
	"github.com/randalmurphal/uritemplate/pkg/uritemplate/observability"
	"github.com/randalmurphal/uritemplate/pkg/uritemplate/registry"
)

// Catalog maps link relations to URI templates and builds links from
// bindings. It is the hypermedia link builder that API resources use to
// render their "_links".
//
// Registration and building are safe for concurrent use.
type Catalog struct {
	templates *registry.Registry[string, *uritemplate.Template]
	cache     *uritemplate.Cache
	expander  *uritemplate.Expander
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	spans     observability.SpanManager
}

// NewCatalog creates an empty catalog.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		templates: registry.New[string, *uritemplate.Template](),
		cache:     uritemplate.NewCache(),
		expander:  uritemplate.NewExpander(),
		metrics:   observability.NoopMetrics{},
		spans:     observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromConfig creates a catalog with the configured expander and relations.
// Options are applied after the configuration, so WithExpander overrides
// the configured expander settings.
func FromConfig(cfg config.Config, opts ...CatalogOption) (*Catalog, error) {
	exp, err := cfg.NewExpander()
	if err != nil {
		return nil, err
	}
	c := NewCatalog(append([]CatalogOption{WithExpander(exp)}, opts...)...)
	if err := c.RegisterAll(cfg.Relations); err != nil {
		return nil, err
	}
	return c, nil
}

// Register parses source and adds it under rel.
//
// Returns a *RelationError wrapping ErrEmptyRelation, ErrDuplicateRelation,
// or the parser's *uritemplate.MalformedTemplateError.
func (c *Catalog) Register(rel, source string) error {
	ctx := context.Background()

	if strings.TrimSpace(rel) == "" {
		return &RelationError{Rel: rel, Op: "register", Err: ErrEmptyRelation}
	}

	t, hit, err := c.cache.Lookup(source)
	c.metrics.RecordCacheLookup(ctx, hit)
	if !hit {
		c.metrics.RecordParse(ctx, rel, err)
	}
	if err != nil {
		observability.LogTemplateError(c.logger, rel, source, err)
		return &RelationError{Rel: rel, Op: "register", Err: err}
	}

	if !c.templates.RegisterNew(rel, t) {
		return &RelationError{Rel: rel, Op: "register", Err: ErrDuplicateRelation}
	}
	observability.LogTemplateRegistered(c.logger, rel, source)
	return nil
}

// RegisterAll registers every relation in sorted order. Valid relations are
// registered even when others fail; the failures are joined.
func (c *Catalog) RegisterAll(relations map[string]string) error {
	var errs []error
	for _, rel := range sortedKeys(relations) {
		if err := c.Register(rel, relations[rel]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Template returns the template registered for rel.
func (c *Catalog) Template(rel string) (*uritemplate.Template, bool) {
	return c.templates.Get(rel)
}

// Relations returns the registered relation names in sorted order.
func (c *Catalog) Relations() []string {
	return c.templates.Keys()
}

// Len returns the number of registered relations.
func (c *Catalog) Len() int {
	return c.templates.Len()
}

// Build expands the template for rel into a single link. Exploded list
// bindings are joined by the expander's separator.
//
// The link is marked Templated when placeholders for unbound variables
// remain in the href.
func (c *Catalog) Build(ctx context.Context, rel string, b uritemplate.Bindings) (Link, error) {
	links, err := c.build(ctx, rel, b, false)
	if err != nil {
		return Link{}, err
	}
	return links[0], nil
}

// BuildEach expands the template for rel once per element of each exploded
// list binding, producing repeated links with the same relation.
//
// Example:
//
//	links, _ := catalog.BuildEach(ctx, "item", uritemplate.Bindings{
//	    "id": []string{"1", "2"},
//	})
//	// links: [{item product/1} {item product/2}]
func (c *Catalog) BuildEach(ctx context.Context, rel string, b uritemplate.Bindings) (Links, error) {
	return c.build(ctx, rel, b, true)
}

// BuildAll builds the named relations, or every registered relation when
// none are named, using BuildEach semantics. Links are ordered by relation
// name. The first failure aborts the build and no links are returned.
func (c *Catalog) BuildAll(ctx context.Context, b uritemplate.Bindings, rels ...string) (Links, error) {
	if len(rels) == 0 {
		rels = c.Relations()
	} else {
		rels = sortedUnique(rels)
	}

	ctx, span := c.spans.StartBuildSpan(ctx, rels)
	var out Links
	for _, rel := range rels {
		links, err := c.build(ctx, rel, b, true)
		if err != nil {
			c.spans.EndSpanWithError(span, err)
			return nil, err
		}
		out = append(out, links...)
	}
	c.spans.EndSpanWithError(span, nil)
	return out, nil
}

func (c *Catalog) build(ctx context.Context, rel string, b uritemplate.Bindings, each bool) (Links, error) {
	t, ok := c.templates.Get(rel)
	if !ok {
		return nil, &RelationError{Rel: rel, Op: "build", Err: ErrUnknownRelation}
	}

	ctx, span := c.spans.StartLinkSpan(ctx, rel, t.String())
	logger := observability.EnrichLogger(c.logger, rel)
	start := time.Now()

	var (
		hrefs []string
		err   error
	)
	if each {
		hrefs, err = c.expander.ExpandEach(t, b)
	} else {
		var href string
		href, err = c.expander.Expand(t, b)
		hrefs = []string{href}
	}
	duration := time.Since(start)
	c.metrics.RecordExpansion(ctx, rel, duration, len(hrefs), err)

	if err != nil {
		observability.LogExpansionError(logger, rel, err)
		c.spans.EndSpanWithError(span, err)
		return nil, &RelationError{Rel: rel, Op: "build", Err: err}
	}

	templated := false
	if c.expander.MissingAction() == uritemplate.MissingKeep {
		for _, name := range unboundNames(t, b) {
			templated = true
			c.spans.AddSpanEvent(ctx, "variable.unbound", attribute.String("variable", name))
		}
	}

	links := make(Links, len(hrefs))
	for i, href := range hrefs {
		links[i] = Link{Rel: rel, Href: href, Templated: templated}
	}

	observability.LogExpansion(logger, rel, len(links), float64(duration.Microseconds())/1000)
	c.spans.EndSpanWithError(span, nil)
	return links, nil
}

// unboundNames returns the template variables with no usable binding.
func unboundNames(t *uritemplate.Template, b uritemplate.Bindings) []string {
	var names []string
	for _, name := range t.Names() {
		if !b.Bound(name) {
			names = append(names, name)
		}
	}
	return names
}
