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

// ReturnPolicy selects how ownership of an outbound tensor is transferred
// to the resulting host array. It applies per call, not per kind.
type ReturnPolicy int

const (
	// Automatic resolves to TakeOwnership for pointer sources and to Copy
	// for value sources.
	Automatic ReturnPolicy = iota
	// AutomaticReference resolves to Reference for pointer sources and to
	// Copy for value sources.
	AutomaticReference
	// TakeOwnership adopts the source tensor, a capsule destroys it when
	// the array goes away.
	TakeOwnership
	// Copy hands the array its own buffer, no ownership link remains.
	Copy
	// Move clones the source into a heap value owned by a capsule.
	Move
	// Reference aliases the buffer without any owner.
	Reference
	// ReferenceInternal aliases the buffer and keeps the parent host
	// object alive as long as the array lives.
	ReferenceInternal
)

func (p ReturnPolicy) String() string {
	switch p {
	case Automatic:
		return "automatic"
	case AutomaticReference:
		return "automatic_reference"
	case TakeOwnership:
		return "take_ownership"
	case Copy:
		return "copy"
	case Move:
		return "move"
	case Reference:
		return "reference"
	case ReferenceInternal:
		return "reference_internal"
	}
	return "unknown"
}

// Resolution of the automatic policies for sources handed over by pointer.
func resolvePointerPolicy(p ReturnPolicy) ReturnPolicy {
	switch p {
	case Automatic:
		return TakeOwnership
	case AutomaticReference:
		return Reference
	}
	return p
}

// Resolution of the automatic policies for sources handed over by value:
// both degrade to a copy, the caller keeps its tensor.
func resolveValuePolicy(p ReturnPolicy) ReturnPolicy {
	if p == Automatic || p == AutomaticReference {
		return Copy
	}
	return p
}
