package ds

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

// ElementType describes the scalar component type of a tensor.
// Only numeric types are supported, tensors have no textual components.
type ElementType struct {
	GoType reflect.Type
	name   string
	size   int
}

var Int8 = &ElementType{
	GoType: reflect.TypeOf((*int8)(nil)).Elem(),
	name:   "int8",
	size:   1,
}

var Uint8 = &ElementType{
	GoType: reflect.TypeOf((*uint8)(nil)).Elem(),
	name:   "uint8",
	size:   1,
}

var Int32 = &ElementType{
	GoType: reflect.TypeOf((*int32)(nil)).Elem(),
	name:   "int32",
	size:   4,
}

var Uint32 = &ElementType{
	GoType: reflect.TypeOf((*uint32)(nil)).Elem(),
	name:   "uint32",
	size:   4,
}

var Int64 = &ElementType{
	GoType: reflect.TypeOf((*int64)(nil)).Elem(),
	name:   "int64",
	size:   8,
}

var Uint64 = &ElementType{
	GoType: reflect.TypeOf((*uint64)(nil)).Elem(),
	name:   "uint64",
	size:   8,
}

var Float32 = &ElementType{
	GoType: reflect.TypeOf((*float32)(nil)).Elem(),
	name:   "float32",
	size:   4,
}

var Float64 = &ElementType{
	GoType: reflect.TypeOf((*float64)(nil)).Elem(),
	name:   "float64",
	size:   8,
}

func (f *ElementType) TypeName() string {
	return f.name
}

// Size of a single element in bytes.
func (f *ElementType) ItemSize() int {
	return f.size
}

func (f *ElementType) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.name)
}

var elementTypes = []*ElementType{
	Int8,
	Uint8,
	Int32,
	Uint32,
	Int64,
	Uint64,
	Float32,
	Float64,
}

func LookupElementType(name string) (*ElementType, error) {
	for _, v := range elementTypes {
		if v.name == name {
			return v, nil
		}
	}
	return nil, errors.Errorf("Unknown element type %s", name)
}
