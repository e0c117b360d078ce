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
package hostarray

import (
	"sync/atomic"

	"github.com/mantik-ai/tensorbridge/ds"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Flags int

const (
	CContiguous Flags = 1 << iota
	FContiguous
	Writeable
)

// OrderFlag returns the contiguity flag a memory order demands.
// Anything but row or column major is a programming error.
func OrderFlag(order ds.MemoryOrder) Flags {
	switch order {
	case ds.RowMajor:
		return CContiguous
	case ds.ColMajor:
		return FContiguous
	}
	logrus.Panicf("Memory order must be row or column major, got %d", int(order))
	return 0
}

// Owner keeps the backing memory of an Array alive. Implemented by *Array
// (owner chains) and *Capsule (finalizers for adopted tensors).
type Owner interface {
	Release()
}

// Array is the host side array object: runtime typed, reference counted,
// with shape, byte strides, contiguity flags and an optional owner that
// keeps the backing buffer alive.
type Array struct {
	dtype   *ds.ElementType
	shape   ds.Shape
	strides []int
	flags   Flags
	data    []byte
	owner   Owner
	refs    int32
}

// New allocates a fresh zeroed array, contiguous in the given order and
// writeable.
func New(dtype *ds.ElementType, shape ds.Shape, order ds.MemoryOrder) *Array {
	data := make([]byte, shape.Elements()*dtype.ItemSize())
	a, err := FromBuffer(dtype, shape, order, data, nil)
	if err != nil {
		// cannot happen, the buffer is sized here
		logrus.Panicf("Array allocation failed: %s", err.Error())
	}
	return a
}

// FromBuffer wraps an existing packed buffer without copying it. The owner
// (may be nil) is released when the last reference to the array is dropped.
func FromBuffer(dtype *ds.ElementType, shape ds.Shape, order ds.MemoryOrder, data []byte, owner Owner) (*Array, error) {
	expected := shape.Elements() * dtype.ItemSize()
	if len(data) < expected {
		return nil, errors.Errorf("Buffer too small, expected %d bytes, got %d", expected, len(data))
	}
	strides := shape.Strides(order, dtype.ItemSize())
	flags := Writeable
	if equalInts(strides, shape.Strides(ds.RowMajor, dtype.ItemSize())) {
		flags |= CContiguous
	}
	if equalInts(strides, shape.Strides(ds.ColMajor, dtype.ItemSize())) {
		flags |= FContiguous
	}
	return &Array{
		dtype:   dtype,
		shape:   shape.Clone(),
		strides: strides,
		flags:   flags,
		data:    data,
		owner:   owner,
		refs:    1,
	}, nil
}

func (a *Array) DType() *ds.ElementType {
	return a.dtype
}

func (a *Array) Rank() int {
	return a.shape.Rank()
}

func (a *Array) Shape() ds.Shape {
	return a.shape
}

func (a *Array) Strides() []int {
	return a.strides
}

func (a *Array) Flags() Flags {
	return a.flags
}

func (a *Array) HasFlag(f Flags) bool {
	return a.flags&f == f
}

func (a *Array) Writeable() bool {
	return a.HasFlag(Writeable)
}

// ClearWriteable revokes write access to the array's buffer.
func (a *Array) ClearWriteable() {
	a.flags &= ^Writeable
}

// Owner returns whatever keeps the buffer alive, nil if the array is on
// its own.
func (a *Array) Owner() Owner {
	return a.owner
}

// Data gives read access to the packed buffer.
func (a *Array) Data() []byte {
	return a.data
}

// MutableData gives write access to the packed buffer. Asking for write
// access on a non writeable array is a programming error.
func (a *Array) MutableData() []byte {
	if !a.Writeable() {
		logrus.Panicf("Mutable access to a non writeable array")
	}
	return a.data
}

// Retain adds a reference and returns the array again.
func (a *Array) Retain() *Array {
	atomic.AddInt32(&a.refs, 1)
	return a
}

// Release drops a reference. The last release drops the buffer and
// releases the owner chain, exactly once.
func (a *Array) Release() {
	n := atomic.AddInt32(&a.refs, -1)
	if n < 0 {
		logrus.Panicf("Release of an already dead array")
	}
	if n == 0 {
		a.data = nil
		if a.owner != nil {
			a.owner.Release()
			a.owner = nil
		}
	}
}

// Refs returns the current reference count.
func (a *Array) Refs() int {
	return int(atomic.LoadInt32(&a.refs))
}

func equalInts(a []int, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if b[i] != v {
			return false
		}
	}
	return true
}
