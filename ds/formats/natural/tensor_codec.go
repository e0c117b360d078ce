/*
 * This file is part of the Mantik Project.
 * Copyright (c) 2020-2021 Mantik UG (Haftungsbeschränkt)
 * Authors: See AUTHORS file
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License version 3.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.
 *
 * Additionally, the following linking exception is granted:
 *
 * If you modify this Program, or any covered work, by linking or
 * combining it with other code, such other code is not for that reason
 * alone subject to any of the requirements of the AGPL
 * version 3.
 *
 * You can be released from the requirements of the license by purchasing
 * a commercial license.
 */
package natural

import (
	"bytes"
	"io"

	"github.com/mantik-ai/tensorbridge/ds"
	"github.com/mantik-ai/tensorbridge/ds/util/serializer"
	"github.com/pkg/errors"
)

// Natural format for tensor values: a metadata header followed by one flat
// element array in the kind's memory order.

// The shape travels next to the kind, dynamic kinds do not know their
// extents.
type tensorHeader struct {
	Type  ds.KindReference `json:"type"`
	Shape ds.Shape         `json:"shape"`
}

func EncodeTensor(t *ds.Tensor, backendType serializer.BackendType) ([]byte, error) {
	var b bytes.Buffer
	err := EncodeTensorToWriter(t, backendType, &b)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func EncodeTensorToWriter(t *ds.Tensor, backendType serializer.BackendType, destination io.Writer) error {
	backend, err := serializer.CreateSerializingBackend(backendType, destination)
	if err != nil {
		return err
	}
	header := tensorHeader{ds.KindRef(t.Kind()), t.Dimensions()}
	if err := backend.EncodeHeader(&header); err != nil {
		return err
	}
	n := t.Dimensions().Elements()
	if err := backend.EncodeArrayLen(n); err != nil {
		return err
	}
	componentType := t.Kind().ComponentType()
	data := t.Data()
	for i := 0; i < n; i++ {
		if err := writeElement(backend, componentType, componentType.ReadAt(data, i)); err != nil {
			return err
		}
	}
	return backend.Finish()
}

func DecodeTensor(backendType serializer.BackendType, data []byte) (*ds.Tensor, error) {
	return DecodeTensorFromReader(backendType, bytes.NewReader(data))
}

func DecodeTensorFromReader(backendType serializer.BackendType, reader io.Reader) (*ds.Tensor, error) {
	backend, err := serializer.CreateDeserializingBackend(backendType, reader)
	if err != nil {
		return nil, err
	}
	var header tensorHeader
	if err := backend.DecodeHeader(&header); err != nil {
		return nil, err
	}
	if header.Type.Underlying == nil {
		return nil, errors.New("Header carries no tensor kind")
	}
	result, err := ds.NewTensor(header.Type.Underlying, header.Shape)
	if err != nil {
		return nil, err
	}
	n, err := backend.DecodeArrayLen()
	if err != nil {
		return nil, err
	}
	if n != header.Shape.Elements() {
		return nil, errors.Errorf("Expected %d elements, got %d", header.Shape.Elements(), n)
	}
	componentType := header.Type.Underlying.ComponentType()
	data := result.MutableData()
	for i := 0; i < n; i++ {
		value, err := readElement(backend, componentType)
		if err != nil {
			return nil, err
		}
		componentType.WriteAt(data, i, value)
	}
	return result, nil
}

func writeElement(backend serializer.SerializingBackend, componentType *ds.ElementType, value interface{}) error {
	switch componentType {
	case ds.Int8:
		return backend.EncodeInt8(value.(int8))
	case ds.Uint8:
		return backend.EncodeUint8(value.(uint8))
	case ds.Int32:
		return backend.EncodeInt32(value.(int32))
	case ds.Uint32:
		return backend.EncodeUint32(value.(uint32))
	case ds.Int64:
		return backend.EncodeInt64(value.(int64))
	case ds.Uint64:
		return backend.EncodeUint64(value.(uint64))
	case ds.Float32:
		return backend.EncodeFloat32(value.(float32))
	case ds.Float64:
		return backend.EncodeFloat64(value.(float64))
	}
	return errors.Errorf("No codec for element type %s", componentType.TypeName())
}

func readElement(backend serializer.DeserializingBackend, componentType *ds.ElementType) (interface{}, error) {
	switch componentType {
	case ds.Int8:
		return backend.DecodeInt8()
	case ds.Uint8:
		return backend.DecodeUint8()
	case ds.Int32:
		return backend.DecodeInt32()
	case ds.Uint32:
		return backend.DecodeUint32()
	case ds.Int64:
		return backend.DecodeInt64()
	case ds.Uint64:
		return backend.DecodeUint64()
	case ds.Float32:
		return backend.DecodeFloat32()
	case ds.Float64:
		return backend.DecodeFloat64()
	}
	return nil, errors.Errorf("No codec for element type %s", componentType.TypeName())
}
