package uritemplate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Parse(t *testing.T) {
	c := NewCache()

	first, hit, err := c.Lookup("product/{id}")
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := c.Lookup("product/{id}")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Same(t, first, second)

	third, err := c.Parse("product/{id}")
	require.NoError(t, err)
	assert.Same(t, first, third)
	assert.Equal(t, 1, c.Len())
}

func TestCache_ErrorsNotCached(t *testing.T) {
	c := NewCache()

	tmpl, err := c.Parse("product/{id")
	require.ErrorIs(t, err, ErrUnterminatedExpression)
	assert.Nil(t, tmpl)
	assert.Equal(t, 0, c.Len())

	_, hit, err := c.Lookup("product/{id")
	require.Error(t, err)
	assert.False(t, hit)
}

func TestCache_Forget(t *testing.T) {
	c := NewCache()
	first, err := c.Parse("a")
	require.NoError(t, err)

	c.Forget("a")
	assert.Equal(t, 0, c.Len())

	second, err := c.Parse("a")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestCache_Concurrent(t *testing.T) {
	c := NewCache()

	var wg sync.WaitGroup
	results := make([]*Template, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tmpl, err := c.Parse("x/{y*}")
			assert.NoError(t, err)
			results[i] = tmpl
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}
