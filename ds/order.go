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
	"encoding/json"

	"github.com/pkg/errors"
)

// MemoryOrder is the layout of packed tensor buffers.
// There are exactly two valid values, everything else is rejected on sight.
type MemoryOrder int

const (
	// RowMajor layout, the last axis is the fastest varying one ("C" order).
	RowMajor MemoryOrder = iota
	// ColMajor layout, the first axis is the fastest varying one ("F" order).
	ColMajor
)

func (o MemoryOrder) IsValid() bool {
	return o == RowMajor || o == ColMajor
}

func (o MemoryOrder) String() string {
	switch o {
	case RowMajor:
		return "c"
	case ColMajor:
		return "f"
	}
	return "invalid"
}

func ParseMemoryOrder(s string) (MemoryOrder, error) {
	switch s {
	case "c":
		return RowMajor, nil
	case "f":
		return ColMajor, nil
	}
	return RowMajor, errors.Errorf("Unknown memory order %s", s)
}

func (o MemoryOrder) MarshalJSON() ([]byte, error) {
	if !o.IsValid() {
		return nil, errors.Errorf("Invalid memory order %d", int(o))
	}
	return json.Marshal(o.String())
}

func (o *MemoryOrder) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	parsed, err := ParseMemoryOrder(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
