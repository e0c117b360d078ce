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

// Shape is the ordered list of per-axis extents of a tensor.
type Shape []int

func (s Shape) Rank() int {
	return len(s)
}

// Elements returns the total element count of the shape.
// The empty shape (rank 0) counts as a single scalar element.
func (s Shape) Elements() int {
	p := 1
	for _, v := range s {
		p = p * v
	}
	return p
}

func (s Shape) Equals(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, v := range s {
		if other[i] != v {
			return false
		}
	}
	return true
}

func (s Shape) Clone() Shape {
	result := make(Shape, len(s))
	copy(result, s)
	return result
}

// Strides returns the byte strides for a packed buffer of the shape.
// Row major packs the last axis densely, column major the first one.
func (s Shape) Strides(order MemoryOrder, itemSize int) []int {
	result := make([]int, len(s))
	if order == RowMajor {
		stride := itemSize
		for i := len(s) - 1; i >= 0; i-- {
			result[i] = stride
			stride = stride * s[i]
		}
	} else {
		stride := itemSize
		for i := 0; i < len(s); i++ {
			result[i] = stride
			stride = stride * s[i]
		}
	}
	return result
}
