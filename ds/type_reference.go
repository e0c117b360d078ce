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
	"log"

	"github.com/mantik-ai/tensorbridge/util/yaml"
	"github.com/pkg/errors"
)

/* References a tensor kind. Responsible for JSON/YAML (De)serialization. */
type KindReference struct {
	Underlying TensorKind
}

/* Shortcut for creating references. */
func KindRef(kind TensorKind) KindReference {
	return KindReference{Underlying: kind}
}

type kindJson struct {
	Type          string      `json:"type"`
	ComponentType string      `json:"componentType"`
	Shape         *[]int      `json:"shape,omitempty"`
	Rank          *int        `json:"rank,omitempty"`
	Order         MemoryOrder `json:"order"`
}

func (k KindReference) MarshalJSON() ([]byte, error) {
	if k.Underlying == nil {
		return nil, errors.New("Empty kind reference")
	}
	result := kindJson{
		Type:          "tensor",
		ComponentType: k.Underlying.ComponentType().TypeName(),
		Order:         k.Underlying.Order(),
	}
	if fixed, ok := k.Underlying.(*FixedKind); ok {
		extents := []int(fixed.Extents())
		result.Shape = &extents
	} else {
		rank := k.Underlying.Rank()
		result.Rank = &rank
	}
	return json.Marshal(&result)
}

func (k *KindReference) UnmarshalJSON(bytes []byte) error {
	parsed := kindJson{Order: RowMajor}
	if err := json.Unmarshal(bytes, &parsed); err != nil {
		return err
	}
	if parsed.Type != "" && parsed.Type != "tensor" {
		return errors.Errorf("Unsupported type %s", parsed.Type)
	}
	componentType, err := LookupElementType(parsed.ComponentType)
	if err != nil {
		return err
	}
	if parsed.Shape != nil {
		kind, err := NewFixedKind(componentType, *parsed.Shape, parsed.Order)
		if err != nil {
			return err
		}
		k.Underlying = kind
		return nil
	}
	if parsed.Rank == nil {
		return errors.New("Either shape or rank must be given")
	}
	kind, err := NewDynamicKind(componentType, *parsed.Rank, parsed.Order)
	if err != nil {
		return err
	}
	k.Underlying = kind
	return nil
}

func FromJson(bytes []byte) (TensorKind, error) {
	r := KindReference{}
	err := json.Unmarshal(bytes, &r)
	if err != nil {
		return nil, err
	}
	return r.Underlying, nil
}

func FromJsonString(s string) (TensorKind, error) {
	return FromJson(([]byte)(s))
}

func FromJsonStringOrPanic(s string) TensorKind {
	d, e := FromJsonString(s)
	if e != nil {
		log.Panicf("Could not convert JSON string to TensorKind %s", e.Error())
	}
	return d
}

// FromYaml parses a kind definition given in YAML (e.g. from metadata headers).
func FromYaml(bytes []byte) (TensorKind, error) {
	r := KindReference{}
	err := yaml.Unmarshal(bytes, &r)
	if err != nil {
		return nil, err
	}
	return r.Underlying, nil
}

func FromYamlString(s string) (TensorKind, error) {
	return FromYaml(([]byte)(s))
}

func ToJsonString(kind TensorKind) string {
	v, err := json.Marshal(KindRef(kind))
	if err != nil {
		println("Something went wrong on marshalling", err.Error())
	}
	return string(v)
}
