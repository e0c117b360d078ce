package serializer

import (
	"encoding/json"
	"io"
)

// The JSON form is a single object: {"header": ..., "value": [ ... ]}.
// Written incrementally so that large tensors stream.
type jsonSerializer struct {
	writer   io.Writer
	elements int
}

func (j *jsonSerializer) write(data []byte) error {
	_, err := j.writer.Write(data)
	return err
}

func (j *jsonSerializer) EncodeHeader(header interface{}) error {
	marshalled, err := json.Marshal(header)
	if err != nil {
		return err
	}
	if err := j.write([]byte(`{"header":`)); err != nil {
		return err
	}
	if err := j.write(marshalled); err != nil {
		return err
	}
	return j.write([]byte(`,"value":`))
}

func (j *jsonSerializer) EncodeArrayLen(l int) error {
	// JSON carries no explicit length, the array brackets do
	j.elements = 0
	return j.write([]byte("["))
}

func (j *jsonSerializer) encodeValue(value interface{}) error {
	if j.elements > 0 {
		if err := j.write([]byte(",")); err != nil {
			return err
		}
	}
	j.elements += 1
	marshalled, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return j.write(marshalled)
}

func (j *jsonSerializer) EncodeInt8(v int8) error {
	return j.encodeValue(v)
}

func (j *jsonSerializer) EncodeUint8(v uint8) error {
	return j.encodeValue(v)
}

func (j *jsonSerializer) EncodeInt32(v int32) error {
	return j.encodeValue(v)
}

func (j *jsonSerializer) EncodeUint32(v uint32) error {
	return j.encodeValue(v)
}

func (j *jsonSerializer) EncodeInt64(v int64) error {
	return j.encodeValue(v)
}

func (j *jsonSerializer) EncodeUint64(v uint64) error {
	return j.encodeValue(v)
}

func (j *jsonSerializer) EncodeFloat32(f float32) error {
	return j.encodeValue(f)
}

func (j *jsonSerializer) EncodeFloat64(f float64) error {
	return j.encodeValue(f)
}

func (j *jsonSerializer) Finish() error {
	return j.write([]byte("]}"))
}
