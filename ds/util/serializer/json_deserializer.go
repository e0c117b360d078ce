package serializer

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"strconv"

	"github.com/pkg/errors"
)

type jsonDeserializer struct {
	reader io.Reader
	parsed *parsedJson
	pos    int
}

type parsedJson struct {
	Header json.RawMessage `json:"header"`
	Value  []json.Number   `json:"value"`
}

func (j *jsonDeserializer) ensureParsed() error {
	if j.parsed != nil {
		return nil
	}
	all, err := ioutil.ReadAll(j.reader)
	if err != nil {
		return err
	}
	var parsed parsedJson
	if err := json.Unmarshal(all, &parsed); err != nil {
		return err
	}
	j.parsed = &parsed
	return nil
}

func (j *jsonDeserializer) DecodeHeader(destination interface{}) error {
	if err := j.ensureParsed(); err != nil {
		return err
	}
	if len(j.parsed.Header) == 0 {
		return errors.New("Missing header")
	}
	return json.Unmarshal(j.parsed.Header, destination)
}

func (j *jsonDeserializer) DecodeArrayLen() (int, error) {
	if err := j.ensureParsed(); err != nil {
		return 0, err
	}
	return len(j.parsed.Value), nil
}

func (j *jsonDeserializer) next() (json.Number, error) {
	if err := j.ensureParsed(); err != nil {
		return "", err
	}
	if j.pos >= len(j.parsed.Value) {
		return "", errors.New("Read after end of value array")
	}
	result := j.parsed.Value[j.pos]
	j.pos += 1
	return result, nil
}

func (j *jsonDeserializer) nextInt(bits int) (int64, error) {
	n, err := j.next()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(n.String(), 10, bits)
}

func (j *jsonDeserializer) nextUint(bits int) (uint64, error) {
	n, err := j.next()
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(n.String(), 10, bits)
}

func (j *jsonDeserializer) DecodeInt8() (int8, error) {
	v, err := j.nextInt(8)
	return int8(v), err
}

func (j *jsonDeserializer) DecodeUint8() (uint8, error) {
	v, err := j.nextUint(8)
	return uint8(v), err
}

func (j *jsonDeserializer) DecodeInt32() (int32, error) {
	v, err := j.nextInt(32)
	return int32(v), err
}

func (j *jsonDeserializer) DecodeUint32() (uint32, error) {
	v, err := j.nextUint(32)
	return uint32(v), err
}

func (j *jsonDeserializer) DecodeInt64() (int64, error) {
	return j.nextInt(64)
}

func (j *jsonDeserializer) DecodeUint64() (uint64, error) {
	return j.nextUint(64)
}

func (j *jsonDeserializer) DecodeFloat32() (float32, error) {
	n, err := j.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(n.String(), 32)
	return float32(v), err
}

func (j *jsonDeserializer) DecodeFloat64() (float64, error) {
	n, err := j.next()
	if err != nil {
		return 0, err
	}
	return n.Float64()
}
