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
	"log"

	"github.com/pkg/errors"
)

// TensorMap is a non owning tensor view over externally owned storage.
// It aliases the buffer it was built over and holds an opaque back
// reference to whatever keeps that buffer alive, released via Release.
type TensorMap struct {
	kind     TensorKind
	shape    Shape
	data     []byte
	readOnly bool
	release  func()
	released bool
}

// NewTensorMap builds a view over an existing packed buffer. The release
// callback (may be nil) is invoked exactly once when the map is released.
func NewTensorMap(kind TensorKind, shape Shape, data []byte, release func()) (*TensorMap, error) {
	if shape.Rank() != kind.Rank() {
		return nil, errors.Errorf("Rank mismatch, kind has %d, shape has %d", kind.Rank(), shape.Rank())
	}
	if !kind.IsCorrectShape(shape) {
		return nil, errors.Errorf("Shape %v not valid for kind %s", shape, kind.Signature())
	}
	expected := shape.Elements() * kind.ComponentType().ItemSize()
	if len(data) < expected {
		return nil, errors.Errorf("Buffer too small, expected %d bytes, got %d", expected, len(data))
	}
	return &TensorMap{kind, shape.Clone(), data, false, release, false}, nil
}

func (m *TensorMap) Kind() TensorKind {
	return m.kind
}

func (m *TensorMap) Dimensions() Shape {
	return m.shape
}

func (m *TensorMap) Data() []byte {
	return m.data
}

func (m *TensorMap) MutableData() []byte {
	if m.readOnly {
		log.Panicf("Mutable access to a read only tensor map")
	}
	return m.data
}

func (m *TensorMap) Freeze() *TensorMap {
	m.readOnly = true
	return m
}

func (m *TensorMap) ReadOnly() bool {
	return m.readOnly
}

func (m *TensorMap) At(indices ...int) interface{} {
	return m.kind.ComponentType().ReadAt(m.data, elementIndex(m.shape, m.kind.Order(), indices))
}

func (m *TensorMap) Set(value interface{}, indices ...int) {
	m.kind.ComponentType().WriteAt(m.MutableData(), elementIndex(m.shape, m.kind.Order(), indices), value)
}

// Release drops the back reference to the backing store. The map owns no
// data itself, so this is all the destruction there is.
func (m *TensorMap) Release() {
	if m.released {
		return
	}
	m.released = true
	m.data = nil
	if m.release != nil {
		m.release()
	}
}
