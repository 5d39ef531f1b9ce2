/*
Package uritemplate parses and expands URI Templates, a subset of RFC 6570.

# Overview

A template is literal text with brace-delimited variables. Parsing turns
the source into an ordered sequence of components: Literal spans and
VarSpec variables. Expansion walks that sequence and substitutes values
from a Bindings map to produce a concrete URI, typically the href of a
hypermedia link.

Supported syntax:

  - {name}      simple variable
  - {name*}     exploded variable, bound to a list or key/value map
  - {a,b*}      several variables in one expression

RFC 6570 operators ({+path}, {?q}, ...) and prefix modifiers ({var:3}) are
rejected with ErrUnsupportedOperator and ErrUnsupportedModifier.

# Basic Usage

	t, err := uritemplate.Parse("product-query/{id}/culture/{culture}")
	if err != nil {
	    return err
	}
	uri, err := t.Expand(uritemplate.Bindings{"id": "123", "culture": "en-US"})
	// uri: "product-query/123/culture/en-US"

# Unbound Variables

By default a variable without a binding keeps its placeholder, so a
partially bound template still shows what is left to fill in:

	uri, _ := uritemplate.MustParse("a/{id}/b").Expand(nil)
	// uri: "a/{id}/b"

Use WithMissingAction on an Expander to drop placeholders or fail instead.

# Exploded Variables

An exploded variable bound to a list joins the elements with the explode
separator (default ","); bound to a map it renders key=value pairs in key
order. ExpandEach instead emits one URI per list element, which is how
repeated link relations are built:

	t := uritemplate.MustParse("product/{id*}")
	hrefs, _ := t.ExpandEach(uritemplate.Bindings{"id": []string{"1", "2"}})
	// hrefs: ["product/1", "product/2"]

# Encoding

Values are substituted unchanged by default. WithEncoding(EncodeUnreserved)
percent-encodes everything outside the RFC 3986 unreserved set;
EncodeReserved also keeps reserved characters. Literal text is never
re-encoded.

# Thread Safety

Templates and Expanders are immutable and safe for concurrent use. Cache
memoizes parsed templates by source string for callers that expand the
same templates repeatedly.
*/
package uritemplate
