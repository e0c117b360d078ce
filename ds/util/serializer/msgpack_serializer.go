package serializer

import (
	"encoding/json"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

type msgPackSerializingBackend struct {
	*msgpack.Encoder
}

func (m *msgPackSerializingBackend) EncodeHeader(header interface{}) error {
	// We want the header to go through the regular MarshalJSON routines,
	// that is why we convert to JSON and transcode to msgpack afterwards.
	// Directly encoding via msgpack would give a different encoding.
	bytes, err := json.Marshal(header)
	if err != nil {
		return err
	}
	value, dataType, _, err := jsonparser.Get(bytes)
	if err != nil {
		return err
	}
	return m.encodeJsonWithType(value, dataType)
}

func (m *msgPackSerializingBackend) encodeJsonWithType(value []byte, dataType jsonparser.ValueType) error {
	switch dataType {
	case jsonparser.String:
		return m.EncodeString((string)(value))
	case jsonparser.Object:
		count := 0
		counter := func([]byte, []byte, jsonparser.ValueType, int) error {
			count += 1
			return nil
		}
		if err := jsonparser.ObjectEach(value, counter); err != nil {
			return err
		}
		if err := m.EncodeMapLen(count); err != nil {
			return err
		}
		subWriter := func(key []byte, value []byte, valueType jsonparser.ValueType, offset int) error {
			// key is always string
			if err := m.EncodeString((string)(key)); err != nil {
				return err
			}
			return m.encodeJsonWithType(value, valueType)
		}
		return jsonparser.ObjectEach(value, subWriter)
	case jsonparser.Number:
		i, err := jsonparser.GetInt(value)
		if err == nil {
			return m.EncodeInt(i)
		}
		f, err := jsonparser.GetFloat(value)
		if err != nil {
			return err
		}
		return m.EncodeFloat64(f)
	case jsonparser.Null:
		return m.EncodeNil()
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return err
		}
		return m.EncodeBool(b)
	case jsonparser.Array:
		count := 0
		counter := func([]byte, jsonparser.ValueType, int, error) {
			count += 1
		}
		if _, err := jsonparser.ArrayEach(value, counter); err != nil {
			return err
		}
		if err := m.EncodeArrayLen(count); err != nil {
			return err
		}
		var subError error
		subWriter := func(value []byte, valueType jsonparser.ValueType, offset int, e error) {
			if err := m.encodeJsonWithType(value, valueType); err != nil {
				subError = err
			}
		}
		if _, err := jsonparser.ArrayEach(value, subWriter); err != nil {
			return err
		}
		return subError
	}
	return errors.Errorf("Unimplemented sub type %d", dataType)
}

func (m *msgPackSerializingBackend) Finish() error {
	// nothing to do, msgpack needs no trailer
	return nil
}
