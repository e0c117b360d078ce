package adapt

import (
	"github.com/mantik-ai/tensorbridge/ds"
	"github.com/pkg/errors"
)

// RawAdapter converts a single raw element value.
type RawAdapter = func(interface{}) interface{}

var emptyRawAdapter RawAdapter = func(i interface{}) interface{} {
	return i
}

// LookupRawAdapter returns a lossless widening adapter between element
// types. Narrowing conversions do not exist here, they would silently
// loose data on the conversion boundary.
func LookupRawAdapter(from *ds.ElementType, to *ds.ElementType) (RawAdapter, error) {
	if from == to {
		return emptyRawAdapter, nil
	}
	switch from {
	case ds.Int8:
		switch to {
		case ds.Int32:
			return func(i interface{}) interface{} { return int32(i.(int8)) }, nil
		case ds.Int64:
			return func(i interface{}) interface{} { return int64(i.(int8)) }, nil
		case ds.Float32:
			return func(i interface{}) interface{} { return float32(i.(int8)) }, nil
		case ds.Float64:
			return func(i interface{}) interface{} { return float64(i.(int8)) }, nil
		}
	case ds.Uint8:
		switch to {
		case ds.Int32:
			return func(i interface{}) interface{} { return int32(i.(uint8)) }, nil
		case ds.Uint32:
			return func(i interface{}) interface{} { return uint32(i.(uint8)) }, nil
		case ds.Int64:
			return func(i interface{}) interface{} { return int64(i.(uint8)) }, nil
		case ds.Uint64:
			return func(i interface{}) interface{} { return uint64(i.(uint8)) }, nil
		case ds.Float32:
			return func(i interface{}) interface{} { return float32(i.(uint8)) }, nil
		case ds.Float64:
			return func(i interface{}) interface{} { return float64(i.(uint8)) }, nil
		}
	case ds.Int32:
		switch to {
		case ds.Int64:
			return func(i interface{}) interface{} { return int64(i.(int32)) }, nil
		case ds.Float64:
			return func(i interface{}) interface{} { return float64(i.(int32)) }, nil
		}
	case ds.Uint32:
		switch to {
		case ds.Int64:
			return func(i interface{}) interface{} { return int64(i.(uint32)) }, nil
		case ds.Uint64:
			return func(i interface{}) interface{} { return uint64(i.(uint32)) }, nil
		case ds.Float64:
			return func(i interface{}) interface{} { return float64(i.(uint32)) }, nil
		}
	case ds.Float32:
		switch to {
		case ds.Float64:
			return func(i interface{}) interface{} { return float64(i.(float32)) }, nil
		}
	}
	return nil, errors.Errorf("No lossless adapter from %s to %s", from.TypeName(), to.TypeName())
}
