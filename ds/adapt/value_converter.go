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
package adapt

import (
	"github.com/mantik-ai/tensorbridge/ds"
	"github.com/mantik-ai/tensorbridge/hostarray"
	"github.com/sirupsen/logrus"
)

/*
Value conversion between owned tensors and host arrays.

Inbound a host array must match the kind's memory order, rank and static
shape. Element types may differ as long as a lossless widening exists, the
loaded tensor always gets its own buffer.

Outbound, ownership of the buffer is governed by exactly one return policy:
a copy, a capsule owning a moved clone, a capsule adopting the source, or an
aliasing reference with an optional parent link. Nothing else, ever.
*/
type ValueConverter struct {
	kind ds.TensorKind
}

func NewValueConverter(kind ds.TensorKind) *ValueConverter {
	return &ValueConverter{kind}
}

func (c *ValueConverter) Kind() ds.TensorKind {
	return c.kind
}

func (c *ValueConverter) Signature() string {
	return c.kind.Signature()
}

// Load converts a host array into an owned tensor. A false result means
// the array is not convertible to this kind; callers are expected to try
// other converters, this is never fatal.
func (c *ValueConverter) Load(a *hostarray.Array) (*ds.Tensor, bool) {
	if !a.HasFlag(hostarray.OrderFlag(c.kind.Order())) {
		return nil, false
	}
	if a.Rank() != c.kind.Rank() {
		return nil, false
	}
	shape := a.Shape().Clone()
	if !c.kind.IsCorrectShape(shape) {
		return nil, false
	}
	result, err := ds.NewTensor(c.kind, shape)
	if err != nil {
		return nil, false
	}
	componentType := c.kind.ComponentType()
	if a.DType() == componentType {
		copy(result.MutableData(), a.Data())
		return result, true
	}
	adapter, err := LookupRawAdapter(a.DType(), componentType)
	if err != nil {
		return nil, false
	}
	logrus.Debugf("Loading %s array through a %s adapter", a.DType().TypeName(), componentType.TypeName())
	n := shape.Elements()
	src := a.Data()
	dst := result.MutableData()
	for i := 0; i < n; i++ {
		componentType.WriteAt(dst, i, adapter(a.DType().ReadAt(src, i)))
	}
	return result, true
}

// Cast converts a tensor handed over by pointer into a host array,
// transferring buffer ownership according to the policy. Invalid policy
// combinations are contract violations by the caller and abort.
func (c *ValueConverter) Cast(src *ds.Tensor, policy ReturnPolicy, parent *hostarray.Array) *hostarray.Array {
	return c.castImpl(src, resolvePointerPolicy(policy), parent)
}

// CastValue is the value semantics variant: the automatic policies degrade
// to a copy and the caller keeps its tensor.
func (c *ValueConverter) CastValue(src *ds.Tensor, policy ReturnPolicy, parent *hostarray.Array) *hostarray.Array {
	return c.castImpl(src, resolveValuePolicy(policy), parent)
}

func (c *ValueConverter) castImpl(src *ds.Tensor, policy ReturnPolicy, parent *hostarray.Array) *hostarray.Array {
	var owner hostarray.Owner
	writeable := false
	switch policy {
	case Move:
		if src.ReadOnly() {
			logrus.Panicf("Cannot move from a read only tensor")
		}
		// Moving still clones the packed buffer, the capsule merely owns
		// the clone. Known inefficiency, not a correctness issue.
		clone := src.Clone()
		src = clone
		owner = hostarray.NewCapsule(clone, destroyTensor)
		writeable = true

	case TakeOwnership:
		if src.ReadOnly() {
			logrus.Panicf("Cannot take ownership of a read only tensor")
		}
		owner = hostarray.NewCapsule(src, destroyTensor)
		writeable = true

	case Copy:
		src = src.Clone()
		writeable = true

	case Reference:
		writeable = !src.ReadOnly()

	case ReferenceInternal:
		if parent != nil {
			owner = parent.Retain()
		}
		writeable = !src.ReadOnly()

	default:
		logrus.Panicf("Unhandled return policy %s", policy.String())
	}
	return buildArray(c.kind, src, owner, writeable)
}

func destroyTensor(v interface{}) {
	v.(*ds.Tensor).Destroy()
}

// rawTensor is what both owned tensors and maps expose to the boundary:
// live dimensions and a packed buffer.
type rawTensor interface {
	ds.Shaped
	Data() []byte
}

// buildArray wraps shape and buffer of a tensor into a host array with the
// chosen owner, clearing writeability when the resolved strategy demands it.
func buildArray(kind ds.TensorKind, src rawTensor, owner hostarray.Owner, writeable bool) *hostarray.Array {
	shape := kind.GetShape(src)
	result, err := hostarray.FromBuffer(kind.ComponentType(), shape, kind.Order(), src.Data(), owner)
	if err != nil {
		logrus.Panicf("Constructing the result array failed: %s", err.Error())
	}
	if !writeable {
		result.ClearWriteable()
	}
	return result
}
