package uritemplate

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// Bindings maps variable names to values.
//
// A value is one of:
//   - a scalar: fmt.Stringer (e.g. uuid.UUID), or any type whose kind is
//     string, bool, integer or float (so "type Culture string" works)
//   - a list: a slice of scalars, e.g. []string, []any or []Culture
//   - a map: a map with string-kind keys and scalar values
//
// A missing name, a nil value and a nil pointer all count as unbound. Names that no
// variable references are ignored. Expansion only reads the map.
type Bindings map[string]any

// Bound reports whether name has a usable binding.
func (b Bindings) Bound(name string) bool {
	_, ok := b.lookup(name)
	return ok
}

// lookup returns the value bound to name, treating nil and nil pointers as
// unbound.
func (b Bindings) lookup(name string) (any, bool) {
	v, ok := b[name]
	if !ok || v == nil || isNilPointer(v) {
		return nil, false
	}
	return v, true
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

type valueKind int

const (
	kindScalar valueKind = iota
	kindList
	kindMap
)

func (k valueKind) String() string {
	switch k {
	case kindList:
		return "list"
	case kindMap:
		return "map"
	default:
		return "scalar"
	}
}

// pair is one entry of a map value.
type pair struct {
	key, value string
}

// value is a bound value normalized to strings.
type value struct {
	kind   valueKind
	scalar string
	list   []string
	pairs  []pair // sorted by key
}

// classify normalizes a bound value. ok is false when the value's type is
// not a supported scalar, list or map.
func classify(v any) (value, bool) {
	if s, ok := scalarString(v); ok {
		return value{kind: kindScalar, scalar: s}, true
	}

	switch x := v.(type) {
	case []string:
		return value{kind: kindList, list: slices.Clone(x)}, true
	case []any:
		list := make([]string, len(x))
		for i, item := range x {
			s, ok := scalarString(item)
			if !ok {
				return value{}, false
			}
			list[i] = s
		}
		return value{kind: kindList, list: list}, true
	case map[string]string:
		pairs := make([]pair, 0, len(x))
		for k, s := range x {
			pairs = append(pairs, pair{key: k, value: s})
		}
		return value{kind: kindMap, pairs: sortPairs(pairs)}, true
	case map[string]any:
		pairs := make([]pair, 0, len(x))
		for k, item := range x {
			s, ok := scalarString(item)
			if !ok {
				return value{}, false
			}
			pairs = append(pairs, pair{key: k, value: s})
		}
		return value{kind: kindMap, pairs: sortPairs(pairs)}, true
	}
	return classifyReflect(reflect.ValueOf(v))
}

// classifyReflect handles named slice and map types such as []Culture or
// map[Key]string.
func classifyReflect(rv reflect.Value) (value, bool) {
	switch rv.Kind() {
	case reflect.Slice:
		list := make([]string, rv.Len())
		for i := range list {
			s, ok := scalarString(rv.Index(i).Interface())
			if !ok {
				return value{}, false
			}
			list[i] = s
		}
		return value{kind: kindList, list: list}, true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return value{}, false
		}
		pairs := make([]pair, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			s, ok := scalarString(iter.Value().Interface())
			if !ok {
				return value{}, false
			}
			pairs = append(pairs, pair{key: iter.Key().String(), value: s})
		}
		return value{kind: kindMap, pairs: sortPairs(pairs)}, true
	}
	return value{}, false
}

// sortPairs orders map entries by key so expansion is deterministic.
func sortPairs(pairs []pair) []pair {
	slices.SortFunc(pairs, func(a, b pair) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		}
		return 0
	})
	return pairs
}

// scalarString renders a scalar. A nil pointer is not a scalar, even when its
// type implements fmt.Stringer.
func scalarString(v any) (string, bool) {
	if isNilPointer(v) {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	case bool:
		return strconv.FormatBool(x), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), true
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	}
	return "", false
}
