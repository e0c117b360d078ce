package hostarray

import (
	"testing"

	"github.com/mantik-ai/tensorbridge/ds"
	"github.com/stretchr/testify/assert"
)

func TestNewArray(t *testing.T) {
	a := New(ds.Float64, ds.Shape{2, 3}, ds.RowMajor)
	assert.Equal(t, 2, a.Rank())
	assert.Equal(t, ds.Shape{2, 3}, a.Shape())
	assert.Equal(t, []int{24, 8}, a.Strides())
	assert.Equal(t, ds.Float64, a.DType())
	assert.Equal(t, 48, len(a.Data()))
	assert.True(t, a.HasFlag(CContiguous))
	assert.False(t, a.HasFlag(FContiguous))
	assert.True(t, a.Writeable())
	assert.Nil(t, a.Owner())
}

func TestNewArrayColMajor(t *testing.T) {
	a := New(ds.Float32, ds.Shape{2, 3}, ds.ColMajor)
	assert.Equal(t, []int{4, 8}, a.Strides())
	assert.False(t, a.HasFlag(CContiguous))
	assert.True(t, a.HasFlag(FContiguous))
}

func TestVectorIsContiguousBothWays(t *testing.T) {
	a := New(ds.Uint8, ds.Shape{5}, ds.RowMajor)
	assert.True(t, a.HasFlag(CContiguous))
	assert.True(t, a.HasFlag(FContiguous))
}

func TestFromBufferValidation(t *testing.T) {
	_, err := FromBuffer(ds.Float64, ds.Shape{2, 3}, ds.RowMajor, make([]byte, 8), nil)
	assert.Error(t, err)

	a, err := FromBuffer(ds.Float64, ds.Shape{2, 3}, ds.RowMajor, make([]byte, 48), nil)
	assert.NoError(t, err)
	assert.True(t, a.Writeable())
}

func TestOrderFlag(t *testing.T) {
	assert.Equal(t, CContiguous, OrderFlag(ds.RowMajor))
	assert.Equal(t, FContiguous, OrderFlag(ds.ColMajor))
	assert.Panics(t, func() {
		OrderFlag(ds.MemoryOrder(3))
	})
}

func TestClearWriteable(t *testing.T) {
	a := New(ds.Float64, ds.Shape{2}, ds.RowMajor)
	a.MutableData()[0] = 1
	a.ClearWriteable()
	assert.False(t, a.Writeable())
	assert.Panics(t, func() {
		a.MutableData()
	})
	// reading stays possible
	assert.Equal(t, byte(1), a.Data()[0])
}

func TestRetainRelease(t *testing.T) {
	a := New(ds.Float64, ds.Shape{2}, ds.RowMajor)
	assert.Equal(t, 1, a.Refs())
	a.Retain()
	assert.Equal(t, 2, a.Refs())
	a.Release()
	assert.NotNil(t, a.Data())
	a.Release()
	assert.Nil(t, a.Data())
	assert.Panics(t, func() {
		a.Release()
	})
}

func TestOwnerChainRelease(t *testing.T) {
	parent := New(ds.Float64, ds.Shape{2, 3}, ds.RowMajor)
	child, err := FromBuffer(ds.Float64, ds.Shape{2, 3}, ds.RowMajor, parent.Data(), parent.Retain())
	assert.NoError(t, err)
	assert.Equal(t, 2, parent.Refs())

	child.Release()
	assert.Equal(t, 1, parent.Refs())
	assert.NotNil(t, parent.Data())
}

func TestCapsuleRunsExactlyOnce(t *testing.T) {
	runs := 0
	c := NewCapsule("payload", func(v interface{}) {
		assert.Equal(t, "payload", v)
		runs += 1
	})
	assert.False(t, c.Released())
	c.Release()
	c.Release()
	assert.Equal(t, 1, runs)
	assert.True(t, c.Released())
}

func TestCapsuleReleasedThroughArray(t *testing.T) {
	runs := 0
	c := NewCapsule(nil, func(interface{}) {
		runs += 1
	})
	a, err := FromBuffer(ds.Float64, ds.Shape{2}, ds.RowMajor, make([]byte, 16), c)
	assert.NoError(t, err)
	a.Retain()
	a.Release()
	assert.Equal(t, 0, runs)
	a.Release()
	assert.Equal(t, 1, runs)
}

func TestCapsuleThroughOwnerChain(t *testing.T) {
	runs := 0
	c := NewCapsule(nil, func(interface{}) {
		runs += 1
	})
	buf := make([]byte, 16)
	parent, err := FromBuffer(ds.Float64, ds.Shape{2}, ds.RowMajor, buf, c)
	assert.NoError(t, err)
	child, err := FromBuffer(ds.Float64, ds.Shape{2}, ds.RowMajor, buf, parent.Retain())
	assert.NoError(t, err)

	parent.Release()
	assert.Equal(t, 0, runs)
	child.Release()
	assert.Equal(t, 1, runs)
}
