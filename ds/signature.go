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
	"strconv"
	"strings"
)

/*
Builds the introspection signature of a tensor kind, e.g.

    array[float64[2, 3], flags.writeable, flags.c_contiguous]
    array[float32[?, ?], flags.writeable, flags.f_contiguous]

Fixed kinds show their literal extents, dynamic kinds one "?" per axis.
Purely compositional, only used for diagnostics.
*/
func signature(kind TensorKind) string {
	dims := make([]string, kind.Rank())
	if fixed, ok := kind.(*FixedKind); ok {
		for i, v := range fixed.extents {
			dims[i] = strconv.Itoa(v)
		}
	} else {
		for i := range dims {
			dims[i] = "?"
		}
	}
	var sb strings.Builder
	sb.WriteString("array[")
	sb.WriteString(kind.ComponentType().TypeName())
	sb.WriteString("[")
	sb.WriteString(strings.Join(dims, ", "))
	sb.WriteString("], flags.writeable, flags.")
	sb.WriteString(kind.Order().String())
	sb.WriteString("_contiguous]")
	return sb.String()
}
