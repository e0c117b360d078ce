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
package yaml

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YAML support by conversion to JSON, so that the custom JSON Marshallers
// of the kind references apply to YAML definitions too. Only reading is
// needed, metadata headers are authored by hand.

// Unmarshal yaml by converting to JSON and using the regular go JSON facilities
func Unmarshal(data []byte, value interface{}) error {
	jsonCode, err := YamlToJson(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonCode, value)
}

/* Convert YAML to JSON, preserving the order of mapping keys. */
func YamlToJson(data []byte) ([]byte, error) {
	buffer := bytes.Buffer{}
	serializer := jsonSerializer{&buffer}
	err := yaml.Unmarshal(data, &serializer)
	if err != nil {
		return nil, err
	}
	if buffer.Len() == 0 {
		return []byte("null"), nil
	}
	return buffer.Bytes(), nil
}

type jsonSerializer struct {
	writer io.Writer
}

func (s *jsonSerializer) append(c byte) {
	_, err := s.writer.Write([]byte{c})
	if err != nil {
		panic(err.Error())
	}
}

func (s *jsonSerializer) appendMany(data []byte) {
	_, err := s.writer.Write(data)
	if err != nil {
		panic(err.Error())
	}
}

func (s *jsonSerializer) appendString(str string) {
	s.appendMany([]byte(str))
}

func (s *jsonSerializer) appendScalar(value *yaml.Node) error {
	switch value.Tag {
	case "!!null":
		s.appendString("null")
	case "!!bool", "!!int", "!!float":
		s.appendString(value.Value)
	case "!!str":
		encoded, err := json.Marshal(value.Value)
		if err != nil {
			return err
		}
		s.appendMany(encoded)
	default:
		return errors.Errorf("Unsupported scalar tag %s", value.Tag)
	}
	return nil
}

var stringAsKeyError = errors.New("JSON only supports strings as keys")

func (s *jsonSerializer) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return s.appendScalar(value)
	case yaml.SequenceNode:
		s.append('[')
		first := true
		for _, c := range value.Content {
			if !first {
				s.append(',')
			}
			first = false
			err := s.UnmarshalYAML(c)
			if err != nil {
				return err
			}
		}
		s.append(']')
	case yaml.MappingNode:
		s.append('{')
		first := true
		for i := 0; i < len(value.Content); i += 2 {
			left := value.Content[i]
			right := value.Content[i+1]
			if !first {
				s.append(',')
			}
			first = false
			if left.Tag != "!!str" {
				return stringAsKeyError
			}
			err := s.UnmarshalYAML(left)
			if err != nil {
				return err
			}
			s.append(':')
			err = s.UnmarshalYAML(right)
			if err != nil {
				return err
			}
		}
		s.append('}')
	}
	return nil
}
