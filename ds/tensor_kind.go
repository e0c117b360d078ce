package ds

import (
	"reflect"

	"github.com/pkg/errors"
)

// Shaped is anything carrying live tensor dimensions (owned tensors and maps).
type Shaped interface {
	Dimensions() Shape
}

// TensorKind describes a tensor type: component type, rank, memory order
// and (for fixed size kinds) the exact extents. There is one implementation
// per kind, selected at construction time.
type TensorKind interface {
	ComponentType() *ElementType
	Rank() int
	Order() MemoryOrder

	// GetShape returns the shape of an instance of this kind. Fixed size
	// kinds answer their static extents independent of the instance.
	GetShape(instance Shaped) Shape

	// IsCorrectShape checks a candidate shape against the static constraints
	// of the kind. Rank checking is left to the callers.
	IsCorrectShape(candidate Shape) bool

	// Signature returns the introspection signature of the kind.
	Signature() string
}

func KindEquality(a TensorKind, b TensorKind) bool {
	return reflect.DeepEqual(a, b)
}

// DynamicKind is a tensor kind with a fixed rank but dynamic extents.
type DynamicKind struct {
	componentType *ElementType
	rank          int
	order         MemoryOrder
}

func NewDynamicKind(componentType *ElementType, rank int, order MemoryOrder) (*DynamicKind, error) {
	if !order.IsValid() {
		return nil, errors.Errorf("Invalid memory order %d", int(order))
	}
	if rank < 0 {
		return nil, errors.Errorf("Invalid rank %d", rank)
	}
	return &DynamicKind{componentType, rank, order}, nil
}

func (d *DynamicKind) ComponentType() *ElementType {
	return d.componentType
}

func (d *DynamicKind) Rank() int {
	return d.rank
}

func (d *DynamicKind) Order() MemoryOrder {
	return d.order
}

func (d *DynamicKind) GetShape(instance Shaped) Shape {
	return instance.Dimensions().Clone()
}

// Dynamic kinds accept any extents, shape correctness is up to consumers.
func (d *DynamicKind) IsCorrectShape(candidate Shape) bool {
	return true
}

func (d *DynamicKind) Signature() string {
	return signature(d)
}

// FixedKind is a tensor kind whose extents are part of the type.
type FixedKind struct {
	componentType *ElementType
	extents       Shape
	order         MemoryOrder
}

func NewFixedKind(componentType *ElementType, extents Shape, order MemoryOrder) (*FixedKind, error) {
	if !order.IsValid() {
		return nil, errors.Errorf("Invalid memory order %d", int(order))
	}
	for _, v := range extents {
		if v < 0 {
			return nil, errors.Errorf("Invalid extent %d", v)
		}
	}
	return &FixedKind{componentType, extents.Clone(), order}, nil
}

func (f *FixedKind) ComponentType() *ElementType {
	return f.componentType
}

func (f *FixedKind) Rank() int {
	return len(f.extents)
}

func (f *FixedKind) Order() MemoryOrder {
	return f.order
}

func (f *FixedKind) Extents() Shape {
	return f.extents.Clone()
}

// The shape of a fixed size tensor is a property of the type, not of the
// instance.
func (f *FixedKind) GetShape(instance Shaped) Shape {
	return f.extents.Clone()
}

func (f *FixedKind) IsCorrectShape(candidate Shape) bool {
	return f.extents.Equals(candidate)
}

func (f *FixedKind) Signature() string {
	return signature(f)
}
