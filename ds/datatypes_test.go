package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupElementType(t *testing.T) {
	for _, v := range elementTypes {
		found, err := LookupElementType(v.TypeName())
		assert.NoError(t, err)
		assert.Equal(t, v, found)
	}
	_, err := LookupElementType("complex128")
	assert.Error(t, err)
}

func TestItemSizes(t *testing.T) {
	assert.Equal(t, 1, Int8.ItemSize())
	assert.Equal(t, 1, Uint8.ItemSize())
	assert.Equal(t, 4, Int32.ItemSize())
	assert.Equal(t, 4, Uint32.ItemSize())
	assert.Equal(t, 8, Int64.ItemSize())
	assert.Equal(t, 8, Uint64.ItemSize())
	assert.Equal(t, 4, Float32.ItemSize())
	assert.Equal(t, 8, Float64.ItemSize())
}

func TestRawCodecRoundTrip(t *testing.T) {
	values := map[*ElementType]interface{}{
		Int8:    int8(-5),
		Uint8:   uint8(250),
		Int32:   int32(-100000),
		Uint32:  uint32(4000000000),
		Int64:   int64(-1) << 60,
		Uint64:  uint64(1) << 63,
		Float32: float32(2.5),
		Float64: float64(-3.25),
	}
	for elementType, value := range values {
		buf := make([]byte, 4*elementType.ItemSize())
		elementType.WriteAt(buf, 2, value)
		assert.Equal(t, value, elementType.ReadAt(buf, 2))
	}
}

func TestMemoryOrder(t *testing.T) {
	assert.True(t, RowMajor.IsValid())
	assert.True(t, ColMajor.IsValid())
	assert.False(t, MemoryOrder(3).IsValid())
	assert.Equal(t, "c", RowMajor.String())
	assert.Equal(t, "f", ColMajor.String())

	parsed, err := ParseMemoryOrder("f")
	assert.NoError(t, err)
	assert.Equal(t, ColMajor, parsed)
	_, err = ParseMemoryOrder("x")
	assert.Error(t, err)
}
