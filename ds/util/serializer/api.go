package serializer

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

type BackendType = int

const BACKEND_MSGPACK BackendType = 1
const BACKEND_JSON BackendType = 2

func CreateSerializingBackend(backendType BackendType, destination io.Writer) (SerializingBackend, error) {
	switch backendType {
	case BACKEND_MSGPACK:
		return &msgPackSerializingBackend{msgpack.NewEncoder(destination)}, nil
	case BACKEND_JSON:
		return &jsonSerializer{writer: destination}, nil
	default:
		return nil, errors.New("Unsupported backend")
	}
}

func CreateDeserializingBackend(backendType BackendType, reader io.Reader) (DeserializingBackend, error) {
	switch backendType {
	case BACKEND_MSGPACK:
		return &msgPackDeserializingBackend{msgpack.NewDecoder(reader)}, nil
	case BACKEND_JSON:
		return &jsonDeserializer{reader: reader}, nil
	default:
		return nil, errors.Errorf("Unsupported backend %d", backendType)
	}
}

// Serializing backend for packed tensor values: a single metadata header
// followed by one flat array of elements. The msgpack backend is the
// compact wire format, the JSON backend exists for debugging and tests.
// Typed methods are like in msgpack.Encoder (for automatic deriving).

type SerializingBackend interface {
	// EncodeHeader writes the leading metadata, going through the regular
	// go JSON marshallers.
	EncodeHeader(header interface{}) error
	EncodeArrayLen(l int) error
	EncodeInt8(v int8) error
	EncodeUint8(v uint8) error
	EncodeInt32(v int32) error
	EncodeUint32(v uint32) error
	EncodeInt64(v int64) error
	EncodeUint64(v uint64) error
	EncodeFloat32(f float32) error
	EncodeFloat64(f float64) error
	Finish() error
}

type DeserializingBackend interface {
	DecodeHeader(destination interface{}) error
	DecodeArrayLen() (int, error)
	DecodeInt8() (int8, error)
	DecodeUint8() (uint8, error)
	DecodeInt32() (int32, error)
	DecodeUint32() (uint32, error)
	DecodeInt64() (int64, error)
	DecodeUint64() (uint64, error)
	DecodeFloat32() (float32, error)
	DecodeFloat64() (float64, error)
}
