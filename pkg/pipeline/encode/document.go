/*
 * Copyright (C) 2025 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package encode

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/netobserv/subnet-finder/pkg/api"
	"github.com/netobserv/subnet-finder/pkg/subnet"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var (
	compactJSON  = jsoniter.Config{EscapeHTML: true}.Froze()
	indentedJSON = jsoniter.Config{EscapeHTML: true, IndentionStep: 2}.Froze()
)

// Document is the ordered output document. Each key is a CIDR string mapping either to a
// nested Document (a branch point) or to a list of addresses (a terminal cluster).
type Document yaml.MapSlice

// NewDocument renders a subnet tree. A Leaf root becomes a single cluster keyed by the
// smallest subnet holding all of its addresses.
func NewDocument(tree subnet.Node) Document {
	if tree.IsLeaf() {
		addrs := tree.Addresses()
		if len(addrs) == 0 {
			return Document{}
		}
		return Document{{Key: subnet.CommonSupernet(addrs).String(), Value: subnet.Strings(addrs)}}
	}
	return newBranch(tree.Children())
}

func newBranch(children *subnet.Children) Document {
	doc := make(Document, 0, children.Len())
	for _, e := range children.Entries() {
		var value interface{}
		if e.Node.IsLeaf() {
			value = subnet.Strings(e.Node.Addresses())
		} else {
			value = newBranch(e.Node.Children())
		}
		doc = append(doc, yaml.MapItem{Key: e.Key.String(), Value: value})
	}
	return doc
}

// MarshalYAML keeps the key order.
func (d Document) MarshalYAML() (interface{}, error) {
	return yaml.MapSlice(d), nil
}

// MarshalJSON writes the document compactly, keeping the key order.
func (d Document) MarshalJSON() ([]byte, error) {
	return marshal(compactJSON, d)
}

func marshal(cfg jsoniter.API, d Document) ([]byte, error) {
	stream := cfg.BorrowStream(nil)
	defer cfg.ReturnStream(stream)
	if err := writeDocument(stream, d); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func writeDocument(stream *jsoniter.Stream, d Document) error {
	if len(d) == 0 {
		stream.WriteEmptyObject()
		return nil
	}
	stream.WriteObjectStart()
	for i, item := range d {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(fmt.Sprint(item.Key))
		switch v := item.Value.(type) {
		case Document:
			if err := writeDocument(stream, v); err != nil {
				return err
			}
		case []string:
			writeStrings(stream, v)
		default:
			return fmt.Errorf("unexpected value %T under %v", item.Value, item.Key)
		}
	}
	stream.WriteObjectEnd()
	return nil
}

func writeStrings(stream *jsoniter.Stream, values []string) {
	if len(values) == 0 {
		stream.WriteEmptyArray()
		return
	}
	stream.WriteArrayStart()
	for i, v := range values {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteString(v)
	}
	stream.WriteArrayEnd()
}

// EncodeJSON returns the indented JSON form of d, newline terminated.
func EncodeJSON(d Document) ([]byte, error) {
	b, err := marshal(indentedJSON, d)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// EncodeYAML returns the YAML form of d.
func EncodeYAML(d Document) ([]byte, error) {
	return yaml.Marshal(d)
}

// Encode serializes d in the given format; an empty format means JSON.
func Encode(d Document, format string) ([]byte, error) {
	log.Debugf("encoding document with %d top level subnets as %q", len(d), format)
	switch format {
	case "", api.FormatName("JSON"):
		return EncodeJSON(d)
	case api.FormatName("YAML"):
		return EncodeYAML(d)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
