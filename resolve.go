package gotable

import (
	"fmt"
	"reflect"
	"strings"
)

// Record is a dynamic attribute bag. Projection produces Records; any
// string-keyed map or struct works as a source record.
type Record = map[string]any

// Resolve walks a dotted path ("a.b.c") through nested maps and exported
// struct fields of an arbitrary record. It returns the resolved value and
// true, or (nil, false) as soon as any segment is missing or nil. Resolution
// never panics and never reports an error; a bad path is just an absent
// value.
//
// Struct fields match their segment case-insensitively, so "name" resolves
// the exported field Name.
func Resolve(record any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	value := record
	for _, segment := range strings.Split(path, ".") {
		var ok bool
		value, ok = resolveSegment(value, segment)
		if !ok {
			return nil, false
		}
	}

	return value, true
}

func resolveSegment(value any, segment string) (any, bool) {
	if value == nil {
		return nil, false
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}

		mv := rv.MapIndex(reflect.ValueOf(segment).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}

		return mv.Interface(), true
	case reflect.Struct:
		fv := rv.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, segment)
		})
		if !fv.IsValid() || !fv.CanInterface() {
			return nil, false
		}

		return fv.Interface(), true
	default:
		return nil, false
	}
}

// Value ranks used by compareValues. Mixed-type datasets sort by rank first,
// which keeps the ordering total and deterministic.
const (
	rankAbsent = iota
	rankBool
	rankNumber
	rankString
	rankOther
)

// compareValues orders two resolved values. Absent (nil or unresolved) values
// sort first in ascending order; bools sort false before true; numeric values
// compare across widths; strings compare byte-wise, lower-cased first when
// fold is set; everything else compares by its formatted representation.
func compareValues(a, b any, fold bool) int {
	ra, rb := valueRank(a), valueRank(b)
	if ra != rb {
		return compareOrdered(ra, rb)
	}

	switch ra {
	case rankAbsent:
		return 0
	case rankBool:
		return compareOrdered(boolToInt(a.(bool)), boolToInt(b.(bool)))
	case rankNumber:
		fa, _ := toFloat(a)
		fb, _ := toFloat(b)
		return compareOrdered(fa, fb)
	case rankString:
		sa, sb := a.(string), b.(string)
		if fold {
			sa, sb = strings.ToLower(sa), strings.ToLower(sb)
		}
		return strings.Compare(sa, sb)
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func valueRank(v any) int {
	if v == nil {
		return rankAbsent
	}

	switch v.(type) {
	case bool:
		return rankBool
	case string:
		return rankString
	}

	if _, ok := toFloat(v); ok {
		return rankNumber
	}

	return rankOther
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func compareOrdered[T int | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
