// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type item Item

// marshal encodes v like json.Marshal but leaves <, > and & as they are
func marshal(v interface{}) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

// MarshalJSON writes bare links as strings
func (i *Item) MarshalJSON() ([]byte, error) {
	if i.IsBare() {
		return marshal(i.Link)
	}
	return marshal((*item)(i))
}

// UnmarshalJSON reads an item from a string or an object
func (i *Item) UnmarshalJSON(b []byte) error {
	var link string
	if err := json.Unmarshal(b, &link); err == nil {
		*i = Item{Link: link}
		return nil
	}
	return json.Unmarshal(b, (*item)(i))
}

// MarshalYAML writes bare links as strings
func (i *Item) MarshalYAML() (interface{}, error) {
	if i.IsBare() {
		return i.Link, nil
	}
	return (*item)(i), nil
}

// UnmarshalYAML reads an item from a scalar or a mapping
func (i *Item) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*i = Item{Link: value.Value}
		return nil
	case yaml.MappingNode:
		return value.Decode((*item)(i))
	}
	return fmt.Errorf("line %d: navigation item must be a link or a mapping", value.Line)
}

// MarshalJSON writes the tag as a [tag, attributes] tuple
func (h *HeadTag) MarshalJSON() ([]byte, error) {
	return marshal([]interface{}{h.Tag, h.attrs()})
}

// UnmarshalJSON reads a [tag, attributes] tuple
func (h *HeadTag) UnmarshalJSON(b []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(b, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("head tag must be a [tag, attributes] tuple, got %d elements", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &h.Tag); err != nil {
		return err
	}
	return json.Unmarshal(tuple[1], &h.Attrs)
}

// MarshalYAML writes the tag as a [tag, attributes] tuple
func (h *HeadTag) MarshalYAML() (interface{}, error) {
	return []interface{}{h.Tag, h.attrs()}, nil
}

// UnmarshalYAML reads a [tag, attributes] tuple
func (h *HeadTag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: head tag must be a [tag, attributes] tuple", value.Line)
	}
	if err := value.Content[0].Decode(&h.Tag); err != nil {
		return err
	}
	return value.Content[1].Decode(&h.Attrs)
}

func (h *HeadTag) attrs() map[string]string {
	if h.Attrs == nil {
		return map[string]string{}
	}
	return h.Attrs
}
