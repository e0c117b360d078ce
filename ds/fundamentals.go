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
	"encoding/binary"
	"log"
	"math"
)

// Raw element access into packed buffers. All buffers are little endian,
// index is an element index, not a byte offset.

// ReadAt reads the idx-th element from a packed buffer.
func (f *ElementType) ReadAt(buf []byte, idx int) interface{} {
	o := idx * f.size
	switch f {
	case Int8:
		return int8(buf[o])
	case Uint8:
		return buf[o]
	case Int32:
		return int32(binary.LittleEndian.Uint32(buf[o:]))
	case Uint32:
		return binary.LittleEndian.Uint32(buf[o:])
	case Int64:
		return int64(binary.LittleEndian.Uint64(buf[o:]))
	case Uint64:
		return binary.LittleEndian.Uint64(buf[o:])
	case Float32:
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[o:]))
	case Float64:
		return math.Float64frombits(binary.LittleEndian.Uint64(buf[o:]))
	}
	log.Panicf("No raw codec for element type %s", f.name)
	return nil
}

// WriteAt writes the idx-th element of a packed buffer.
// The value must have the exact Go type of the element type.
func (f *ElementType) WriteAt(buf []byte, idx int, value interface{}) {
	o := idx * f.size
	switch f {
	case Int8:
		buf[o] = uint8(value.(int8))
	case Uint8:
		buf[o] = value.(uint8)
	case Int32:
		binary.LittleEndian.PutUint32(buf[o:], uint32(value.(int32)))
	case Uint32:
		binary.LittleEndian.PutUint32(buf[o:], value.(uint32))
	case Int64:
		binary.LittleEndian.PutUint64(buf[o:], uint64(value.(int64)))
	case Uint64:
		binary.LittleEndian.PutUint64(buf[o:], value.(uint64))
	case Float32:
		binary.LittleEndian.PutUint32(buf[o:], math.Float32bits(value.(float32)))
	case Float64:
		binary.LittleEndian.PutUint64(buf[o:], math.Float64bits(value.(float64)))
	default:
		log.Panicf("No raw codec for element type %s", f.name)
	}
}
