/*
Package link builds hypermedia links from URI templates.

# Overview

A Catalog maps relation names ("self", "item", "culture") to parsed
templates. API resources pass identifiers as bindings and get back Link
values ready to embed in a response body.

	catalog := link.NewCatalog()
	_ = catalog.Register("self", "product-query/{id}/culture/{culture}")
	_ = catalog.Register("item", "product/{id*}")

	self, err := catalog.Build(ctx, "self", uritemplate.Bindings{
	    "id":      recordID, // uuid.UUID renders through String()
	    "culture": "en-US",
	})

# Repeated Relations

BuildEach and BuildAll emit one link per element of an exploded list
binding rather than joining the elements:

	links, _ := catalog.BuildEach(ctx, "item", uritemplate.Bindings{
	    "id": []string{"1", "2"},
	})
	// [{item product/1} {item product/2}]

# Serialization

Links marshals to JSON as an object keyed by relation, using an array for
repeated relations, and to XML as a <links> element of <link> children.

# Configuration

FromConfig builds a catalog from a config.Config loaded from YAML or JSON.

# Observability

WithLogger, WithMetrics and WithSpanManager attach slog logging and
OpenTelemetry metrics and traces. All default to no-ops.
*/
package link
