package serializer

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
	"github.com/vmihailenco/msgpack/codes"
)

type msgPackDeserializingBackend struct {
	*msgpack.Decoder
}

func (m *msgPackDeserializingBackend) DecodeHeader(destination interface{}) error {
	// Convert back to JSON and parse through the regular JSON facilities,
	// so that the custom UnmarshalJSON routines apply.
	var buf bytes.Buffer
	if err := m.decodePlainJson(&buf); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), destination)
}

func (m *msgPackDeserializingBackend) decodePlainJson(buf *bytes.Buffer) error {
	code, err := m.PeekCode()
	if err != nil {
		return err
	}

	addMarshalled := func(i interface{}) error {
		marshalled, err := json.Marshal(i)
		if err != nil {
			return err
		}
		_, err = buf.Write(marshalled)
		return err
	}

	if code == codes.Array16 || code == codes.Array32 || codes.IsFixedArray(code) {
		return m.decodePlainJsonArray(buf)
	}
	if code == codes.Map16 || code == codes.Map32 || codes.IsFixedMap(code) {
		return m.decodePlainJsonMap(buf)
	}
	if codes.IsString(code) {
		s, err := m.DecodeString()
		if err != nil {
			return err
		}
		return addMarshalled(s)
	}
	if codes.IsFixedNum(code) || code == codes.Int8 || code == codes.Int16 || code == codes.Int32 || code == codes.Int64 {
		i, err := m.DecodeInt64()
		if err != nil {
			return err
		}
		return addMarshalled(i)
	}
	if code == codes.Uint8 || code == codes.Uint16 || code == codes.Uint32 || code == codes.Uint64 {
		i, err := m.DecodeUint64()
		if err != nil {
			return err
		}
		return addMarshalled(i)
	}
	if code == codes.Float || code == codes.Double {
		f, err := m.DecodeFloat64()
		if err != nil {
			return err
		}
		return addMarshalled(f)
	}
	if code == codes.True || code == codes.False {
		b, err := m.DecodeBool()
		if err != nil {
			return err
		}
		return addMarshalled(b)
	}
	if code == codes.Nil {
		if err := m.DecodeNil(); err != nil {
			return err
		}
		_, err := buf.Write([]byte("null"))
		return err
	}
	return errors.Errorf("Unsupported type %d", code)
}

func (m *msgPackDeserializingBackend) decodePlainJsonArray(buf *bytes.Buffer) error {
	arrayLength, err := m.DecodeArrayLen()
	if err != nil {
		return err
	}
	if err = buf.WriteByte('['); err != nil {
		return err
	}
	for i := 0; i < arrayLength; i++ {
		if i > 0 {
			if err = buf.WriteByte(','); err != nil {
				return err
			}
		}
		if err = m.decodePlainJson(buf); err != nil {
			return err
		}
	}
	return buf.WriteByte(']')
}

func (m *msgPackDeserializingBackend) decodePlainJsonMap(buf *bytes.Buffer) error {
	mapLength, err := m.DecodeMapLen()
	if err != nil {
		return err
	}
	if err = buf.WriteByte('{'); err != nil {
		return err
	}
	for i := 0; i < mapLength; i++ {
		if i > 0 {
			if err = buf.WriteByte(','); err != nil {
				return err
			}
		}
		s, err := m.DecodeString()
		if err != nil {
			return err
		}
		sbytes, err := json.Marshal(s)
		if err != nil {
			return err
		}
		if _, err = buf.Write(sbytes); err != nil {
			return err
		}
		if err = buf.WriteByte(':'); err != nil {
			return err
		}
		if err = m.decodePlainJson(buf); err != nil {
			return err
		}
	}
	return buf.WriteByte('}')
}
