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
package ds

import (
	"bytes"
	"log"
	"reflect"

	"github.com/pkg/errors"
)

// Tensor is an owned tensor value: it holds its own packed buffer.
type Tensor struct {
	kind     TensorKind
	shape    Shape
	data     []byte
	readOnly bool
}

// NewTensor allocates a zeroed tensor of the given kind and shape.
func NewTensor(kind TensorKind, shape Shape) (*Tensor, error) {
	if shape.Rank() != kind.Rank() {
		return nil, errors.Errorf("Rank mismatch, kind has %d, shape has %d", kind.Rank(), shape.Rank())
	}
	if !kind.IsCorrectShape(shape) {
		return nil, errors.Errorf("Shape %v not valid for kind %s", shape, kind.Signature())
	}
	data := make([]byte, shape.Elements()*kind.ComponentType().ItemSize())
	return &Tensor{kind, shape.Clone(), data, false}, nil
}

// TensorWithValues allocates a tensor and fills it from a flat slice of the
// component's Go type, given in the kind's memory order.
func TensorWithValues(kind TensorKind, shape Shape, values interface{}) (*Tensor, error) {
	t, err := NewTensor(kind, shape)
	if err != nil {
		return nil, err
	}
	v := reflect.ValueOf(values)
	if v.Kind() != reflect.Slice || v.Type().Elem() != kind.ComponentType().GoType {
		return nil, errors.Errorf("Expected a slice of %s", kind.ComponentType().TypeName())
	}
	if v.Len() != shape.Elements() {
		return nil, errors.Errorf("Expected %d values, got %d", shape.Elements(), v.Len())
	}
	componentType := kind.ComponentType()
	for i := 0; i < v.Len(); i++ {
		componentType.WriteAt(t.data, i, v.Index(i).Interface())
	}
	return t, nil
}

func (t *Tensor) Kind() TensorKind {
	return t.kind
}

func (t *Tensor) Dimensions() Shape {
	return t.shape
}

// Data returns the packed backing buffer. Writes through it are only
// permitted via MutableData.
func (t *Tensor) Data() []byte {
	return t.data
}

func (t *Tensor) MutableData() []byte {
	if t.readOnly {
		log.Panicf("Mutable access to a read only tensor")
	}
	return t.data
}

// Freeze marks the tensor read only (the const view of the value).
func (t *Tensor) Freeze() *Tensor {
	t.readOnly = true
	return t
}

func (t *Tensor) ReadOnly() bool {
	return t.readOnly
}

// Clone returns a writable deep copy.
func (t *Tensor) Clone() *Tensor {
	data := make([]byte, len(t.data))
	copy(data, t.data)
	return &Tensor{t.kind, t.shape.Clone(), data, false}
}

// Destroy drops the backing buffer. Called by capsules when the wrapping
// host array releases a moved or adopted tensor.
func (t *Tensor) Destroy() {
	t.data = nil
}

func (t *Tensor) IsDestroyed() bool {
	return t.data == nil
}

// At reads the element at the given axis indices.
func (t *Tensor) At(indices ...int) interface{} {
	return t.kind.ComponentType().ReadAt(t.data, elementIndex(t.shape, t.kind.Order(), indices))
}

// Set writes the element at the given axis indices.
func (t *Tensor) Set(value interface{}, indices ...int) {
	t.kind.ComponentType().WriteAt(t.MutableData(), elementIndex(t.shape, t.kind.Order(), indices), value)
}

// Equals compares component type, shape and elements.
func (t *Tensor) Equals(other *Tensor) bool {
	return t.kind.ComponentType() == other.kind.ComponentType() &&
		t.shape.Equals(other.shape) &&
		bytes.Equal(t.data, other.data)
}

func elementIndex(shape Shape, order MemoryOrder, indices []int) int {
	if len(indices) != len(shape) {
		log.Panicf("Expected %d indices, got %d", len(shape), len(indices))
	}
	result := 0
	if order == RowMajor {
		for i := 0; i < len(shape); i++ {
			result = result*shape[i] + indices[i]
		}
	} else {
		for i := len(shape) - 1; i >= 0; i-- {
			result = result*shape[i] + indices[i]
		}
	}
	return result
}
