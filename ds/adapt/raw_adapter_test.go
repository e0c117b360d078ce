package adapt

import (
	"testing"

	"github.com/mantik-ai/tensorbridge/ds"
	"github.com/stretchr/testify/assert"
)

func TestIdentityAdapter(t *testing.T) {
	adapter, err := LookupRawAdapter(ds.Float64, ds.Float64)
	assert.NoError(t, err)
	assert.Equal(t, float64(3.5), adapter(float64(3.5)))
}

func TestWideningAdapters(t *testing.T) {
	cases := []struct {
		from     *ds.ElementType
		to       *ds.ElementType
		in       interface{}
		expected interface{}
	}{
		{ds.Int8, ds.Int32, int8(-5), int32(-5)},
		{ds.Int8, ds.Int64, int8(-5), int64(-5)},
		{ds.Int8, ds.Float32, int8(-5), float32(-5)},
		{ds.Int8, ds.Float64, int8(-5), float64(-5)},
		{ds.Uint8, ds.Int32, uint8(200), int32(200)},
		{ds.Uint8, ds.Uint32, uint8(200), uint32(200)},
		{ds.Uint8, ds.Int64, uint8(200), int64(200)},
		{ds.Uint8, ds.Uint64, uint8(200), uint64(200)},
		{ds.Uint8, ds.Float32, uint8(200), float32(200)},
		{ds.Uint8, ds.Float64, uint8(200), float64(200)},
		{ds.Int32, ds.Int64, int32(-100000), int64(-100000)},
		{ds.Int32, ds.Float64, int32(-100000), float64(-100000)},
		{ds.Uint32, ds.Int64, uint32(4000000000), int64(4000000000)},
		{ds.Uint32, ds.Uint64, uint32(4000000000), uint64(4000000000)},
		{ds.Uint32, ds.Float64, uint32(4000000000), float64(4000000000)},
		{ds.Float32, ds.Float64, float32(2.5), float64(2.5)},
	}
	for _, c := range cases {
		adapter, err := LookupRawAdapter(c.from, c.to)
		assert.NoError(t, err, "from %s to %s", c.from.TypeName(), c.to.TypeName())
		assert.Equal(t, c.expected, adapter(c.in))
	}
}

func TestNoNarrowingAdapters(t *testing.T) {
	cases := [][2]*ds.ElementType{
		{ds.Float64, ds.Float32},
		{ds.Int64, ds.Int32},
		{ds.Int32, ds.Uint32},
		{ds.Uint64, ds.Float64},
		{ds.Int64, ds.Float64},
		{ds.Float32, ds.Int32},
	}
	for _, c := range cases {
		_, err := LookupRawAdapter(c[0], c[1])
		assert.Error(t, err, "from %s to %s", c[0].TypeName(), c[1].TypeName())
	}
}

func TestPolicyNames(t *testing.T) {
	assert.Equal(t, "automatic", Automatic.String())
	assert.Equal(t, "automatic_reference", AutomaticReference.String())
	assert.Equal(t, "take_ownership", TakeOwnership.String())
	assert.Equal(t, "copy", Copy.String())
	assert.Equal(t, "move", Move.String())
	assert.Equal(t, "reference", Reference.String())
	assert.Equal(t, "reference_internal", ReferenceInternal.String())
	assert.Equal(t, "unknown", ReturnPolicy(42).String())
}

func TestSignaturePassThrough(t *testing.T) {
	kind, _ := ds.NewFixedKind(ds.Float64, ds.Shape{2, 3}, ds.RowMajor)
	assert.Equal(t, kind.Signature(), NewValueConverter(kind).Signature())
	assert.Equal(t, kind.Signature(), NewViewConverter(kind).Signature())
}
