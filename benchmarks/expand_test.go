package benchmarks

import (
	"context"
	"testing"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
	"github.com/randalmurphal/uritemplate/pkg/uritemplate/link"
)

// BenchmarkExpand_Scalars expands two scalar variables.
func BenchmarkExpand_Scalars(b *testing.B) {
	t := uritemplate.MustParse("product-query/{id}/culture/{culture}")
	vars := uritemplate.Bindings{"id": "123", "culture": "en-US"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = t.Expand(vars)
	}
}

// BenchmarkExpand_Encoded expands with unreserved percent-encoding.
func BenchmarkExpand_Encoded(b *testing.B) {
	exp := uritemplate.NewExpander(uritemplate.WithEncoding(uritemplate.EncodeUnreserved))
	t := uritemplate.MustParse("search/{q}")
	vars := uritemplate.Bindings{"q": "red shoes / size 9"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = exp.Expand(t, vars)
	}
}

// BenchmarkExpand_ExplodedMap expands an exploded map of 10 entries.
func BenchmarkExpand_ExplodedMap(b *testing.B) {
	t := uritemplate.MustParse("search?{filter*}")
	m := make(map[string]string, 10)
	for i := 0; i < 10; i++ {
		m[varName(i)] = "v"
	}
	vars := uritemplate.Bindings{"filter": m}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = t.Expand(vars)
	}
}

// BenchmarkExpandEach_100 fans an exploded list out into 100 URIs.
func BenchmarkExpandEach_100(b *testing.B) {
	t := uritemplate.MustParse("product/{id*}")
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = varName(i)
	}
	vars := uritemplate.Bindings{"id": ids}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = t.ExpandEach(vars)
	}
}

// BenchmarkCatalog_BuildAll builds every relation of a small catalog.
func BenchmarkCatalog_BuildAll(b *testing.B) {
	c := link.NewCatalog()
	if err := c.RegisterAll(map[string]string{
		"self":    "product-query/{id}/culture/{culture}",
		"item":    "product/{id*}",
		"filters": "products?{filter*}",
	}); err != nil {
		b.Fatal(err)
	}
	vars := uritemplate.Bindings{"id": "1", "culture": "en-US", "filter": map[string]string{"q": "x"}}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.BuildAll(ctx, vars)
	}
}
