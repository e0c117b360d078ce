package natural

import (
	"testing"

	"github.com/mantik-ai/tensorbridge/ds"
	"github.com/mantik-ai/tensorbridge/ds/util/serializer"
	"github.com/stretchr/testify/assert"
)

var backends = []serializer.BackendType{serializer.BACKEND_MSGPACK, serializer.BACKEND_JSON}

func TestTensorRoundTripFixed(t *testing.T) {
	kind, _ := ds.NewFixedKind(ds.Float64, ds.Shape{2, 3}, ds.RowMajor)
	tensor, err := ds.TensorWithValues(kind, ds.Shape{2, 3}, []float64{1, 2, 3, 4.5, -5, 6})
	assert.NoError(t, err)

	for _, backend := range backends {
		encoded, err := EncodeTensor(tensor, backend)
		assert.NoError(t, err)
		decoded, err := DecodeTensor(backend, encoded)
		assert.NoError(t, err)
		assert.True(t, ds.KindEquality(kind, decoded.Kind()))
		assert.True(t, tensor.Equals(decoded))
	}
}

func TestTensorRoundTripDynamic(t *testing.T) {
	kind, _ := ds.NewDynamicKind(ds.Uint8, 3, ds.ColMajor)
	tensor, err := ds.TensorWithValues(kind, ds.Shape{2, 2, 2}, []uint8{1, 2, 3, 4, 5, 6, 7, 8})
	assert.NoError(t, err)

	for _, backend := range backends {
		encoded, err := EncodeTensor(tensor, backend)
		assert.NoError(t, err)
		decoded, err := DecodeTensor(backend, encoded)
		assert.NoError(t, err)
		assert.Equal(t, ds.Shape{2, 2, 2}, decoded.Dimensions())
		assert.True(t, tensor.Equals(decoded))
	}
}

func TestTensorRoundTripBigIntegers(t *testing.T) {
	kind, _ := ds.NewDynamicKind(ds.Uint64, 1, ds.RowMajor)
	tensor, err := ds.TensorWithValues(kind, ds.Shape{3}, []uint64{0, 1 << 60, 1<<64 - 1})
	assert.NoError(t, err)

	for _, backend := range backends {
		encoded, err := EncodeTensor(tensor, backend)
		assert.NoError(t, err)
		decoded, err := DecodeTensor(backend, encoded)
		assert.NoError(t, err)
		assert.True(t, tensor.Equals(decoded))
	}
}

func TestTensorJsonForm(t *testing.T) {
	kind, _ := ds.NewFixedKind(ds.Int32, ds.Shape{2}, ds.RowMajor)
	tensor, err := ds.TensorWithValues(kind, ds.Shape{2}, []int32{-1, 2})
	assert.NoError(t, err)

	encoded, err := EncodeTensor(tensor, serializer.BACKEND_JSON)
	assert.NoError(t, err)
	assert.Equal(t,
		`{"header":{"type":{"type":"tensor","componentType":"int32","shape":[2],"order":"c"},"shape":[2]},"value":[-1,2]}`,
		string(encoded))
}

func TestDecodeRejectsElementCountMismatch(t *testing.T) {
	_, err := DecodeTensor(serializer.BACKEND_JSON,
		[]byte(`{"header":{"type":{"type":"tensor","componentType":"int32","shape":[2],"order":"c"},"shape":[2]},"value":[-1,2,3]}`))
	assert.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeTensor(serializer.BACKEND_JSON, []byte(`{"value":[1]}`))
	assert.Error(t, err)
	_, err = DecodeTensor(serializer.BACKEND_MSGPACK, []byte{0xc1})
	assert.Error(t, err)
}
