package parse

import (
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/zjrosen/aoc/aocerr"
)

// Scalar is the set of types Value knows how to convert.
type Scalar interface {
	constraints.Integer | constraints.Float | ~string | ~bool
}

// Value converts a single token to T. Integers are parsed in base 10 and must
// fit T. Named types (type Cost int) are converted through their underlying kind.
func Value[T Scalar](s string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return v, aocerr.From(err)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return v, aocerr.From(err)
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return v, aocerr.From(err)
		}
		rv.SetFloat(f)
	case reflect.String:
		rv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return v, aocerr.From(err)
		}
		rv.SetBool(b)
	default:
		return v, aocerr.Parsef("unsupported target type %T", v)
	}

	return v, nil
}
