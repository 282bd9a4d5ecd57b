/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ExportsKind discriminates the node types of a conditional-exports tree.
type ExportsKind int

const (
	// ExportsString is a leaf target path.
	ExportsString ExportsKind = iota
	// ExportsNull is the explicit "not exported" marker.
	ExportsNull
	// ExportsObject is a subpath or condition map.
	ExportsObject
	// ExportsArray is a fallback list of alternatives.
	ExportsArray
)

// ExportsNode is one node of a parsed exports field. Object nodes retain
// their key order from the document, since encoding/json maps would lose
// the ordering that condition matching depends on.
type ExportsNode struct {
	// Kind discriminates which of the remaining fields is populated.
	Kind ExportsKind

	// Value is the target path for ExportsString nodes.
	Value string

	// Keys lists object keys in document order.
	Keys []string

	// Items lists array members in document order.
	Items []*ExportsNode

	children map[string]*ExportsNode
}

// Get returns the child node for the given object key.
func (n *ExportsNode) Get(key string) (*ExportsNode, bool) {
	child, ok := n.children[key]
	return child, ok
}

// IsSubpathMap reports whether an object node maps subpaths (keys starting
// with ".") rather than conditions.
func (n *ExportsNode) IsSubpathMap() bool {
	if n.Kind != ExportsObject {
		return false
	}
	for _, key := range n.Keys {
		if len(key) > 0 && key[0] == '.' {
			return true
		}
	}
	return false
}

// parseExports decodes an exports field with a token-stream decoder so that
// object key order survives.
func parseExports(data []byte) (*ExportsNode, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseExportsNode(dec, tok)
}

func parseExportsNode(dec *json.Decoder, tok json.Token) (*ExportsNode, error) {
	switch t := tok.(type) {
	case nil:
		return &ExportsNode{Kind: ExportsNull}, nil
	case string:
		return &ExportsNode{Kind: ExportsString, Value: t}, nil
	case json.Delim:
		switch t {
		case '{':
			node := &ExportsNode{
				Kind:     ExportsObject,
				children: make(map[string]*ExportsNode),
			}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}
				valTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				child, err := parseExportsNode(dec, valTok)
				if err != nil {
					return nil, err
				}
				node.Keys = append(node.Keys, key)
				node.children[key] = child
			}
			if _, err := dec.Token(); err != nil { // closing brace
				return nil, err
			}
			return node, nil
		case '[':
			node := &ExportsNode{Kind: ExportsArray}
			for dec.More() {
				itemTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				item, err := parseExportsNode(dec, itemTok)
				if err != nil {
					return nil, err
				}
				node.Items = append(node.Items, item)
			}
			if _, err := dec.Token(); err != nil { // closing bracket
				return nil, err
			}
			return node, nil
		}
	}
	return nil, fmt.Errorf("unsupported exports value %v", tok)
}
