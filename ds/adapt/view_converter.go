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
View conversion between non owning tensor maps and host arrays.

Inbound checks are stricter than on the value path, nothing may be
converted or copied here: the contiguity flag, element type, rank and
static shape all have to match exactly. The loaded map aliases the host
array's buffer and retains the array until the map is released.

Outbound only the reference policies exist. A map never holds its own
storage, so there is nothing to move or to take ownership of.
*/
type ViewConverter struct {
	kind ds.TensorKind
}

func NewViewConverter(kind ds.TensorKind) *ViewConverter {
	return &ViewConverter{kind}
}

func (c *ViewConverter) Kind() ds.TensorKind {
	return c.kind
}

func (c *ViewConverter) Signature() string {
	return c.kind.Signature()
}

// Load builds a zero copy view over the host array's buffer. A false
// result means the array is not convertible, this is never fatal.
func (c *ViewConverter) Load(a *hostarray.Array) (*ds.TensorMap, bool) {
	if !a.HasFlag(hostarray.OrderFlag(c.kind.Order())) {
		return nil, false
	}
	if a.DType() != c.kind.ComponentType() {
		return nil, false
	}
	if a.Rank() != c.kind.Rank() {
		return nil, false
	}
	shape := a.Shape().Clone()
	if !c.kind.IsCorrectShape(shape) {
		return nil, false
	}
	retained := a.Retain()
	result, err := ds.NewTensorMap(c.kind, shape, a.Data(), func() {
		retained.Release()
	})
	if err != nil {
		retained.Release()
		return nil, false
	}
	if !a.Writeable() {
		result.Freeze()
	}
	return result, true
}

// Cast wraps the view into a host array. Writeability follows the map,
// any policy except Reference and ReferenceInternal is a contract
// violation by the caller and aborts.
func (c *ViewConverter) Cast(src *ds.TensorMap, policy ReturnPolicy, parent *hostarray.Array) *hostarray.Array {
	var owner hostarray.Owner
	switch resolvePointerPolicy(policy) {
	case Reference:
		// no owner, the caller keeps the backing store alive

	case ReferenceInternal:
		if parent != nil {
			owner = parent.Retain()
		}

	default:
		logrus.Panicf("Invalid return policy %s for a tensor map, must be Reference or ReferenceInternal", policy.String())
	}
	return buildArray(c.kind, src, owner, !src.ReadOnly())
}
