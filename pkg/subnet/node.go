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

package subnet

import "slices"

// Kind tags the two Node variants.
type Kind uint8

const (
	// KindLeaf holds addresses attached directly at this level.
	KindLeaf Kind = iota
	// KindInternal holds an ordered mapping of child subnets.
	KindInternal
)

// Node is a subnet tree node: either a Leaf (a set of addresses that do not fit under
// any finer subnet) or an Internal node (ordered child subnets). The zero value is an
// empty Leaf.
type Node struct {
	kind     Kind
	addrs    []Address
	children *Children
}

// NewLeaf returns a Leaf holding addrs. The slice is not copied.
func NewLeaf(addrs []Address) Node {
	return Node{kind: KindLeaf, addrs: addrs}
}

// NewInternal returns an Internal node around children; nil means no children.
func NewInternal(children *Children) Node {
	if children == nil {
		children = NewChildren()
	}
	return Node{kind: KindInternal, children: children}
}

// Kind returns the variant tag.
func (n Node) Kind() Kind {
	return n.kind
}

func (n Node) IsLeaf() bool {
	return n.kind == KindLeaf
}

func (n Node) IsInternal() bool {
	return n.kind == KindInternal
}

// Addresses returns the addresses of a Leaf, nil for an Internal node.
func (n Node) Addresses() []Address {
	if n.kind != KindLeaf {
		return nil
	}
	return n.addrs
}

// Children returns the children of an Internal node, nil for a Leaf.
func (n Node) Children() *Children {
	if n.kind != KindInternal {
		return nil
	}
	return n.children
}

// Size is the number of addresses reachable from n.
func (n Node) Size() int {
	switch n.kind {
	case KindInternal:
		size := 0
		for _, e := range n.children.Entries() {
			size += e.Node.Size()
		}
		return size
	default:
		return len(n.addrs)
	}
}

// Clone returns a deep copy.
func (n Node) Clone() Node {
	switch n.kind {
	case KindInternal:
		c := NewChildren()
		for _, e := range n.children.Entries() {
			c.Set(e.Key, e.Node.Clone())
		}
		return NewInternal(c)
	default:
		return NewLeaf(slices.Clone(n.addrs))
	}
}

// Flatten collects every address below n, discarding all subnet boundaries.
// The result is sorted and de-duplicated.
func Flatten(n Node) []Address {
	out := collect(n, nil)
	slices.Sort(out)
	return slices.Compact(out)
}

func collect(n Node, out []Address) []Address {
	switch n.kind {
	case KindInternal:
		for _, e := range n.children.Entries() {
			out = collect(e.Node, out)
		}
		return out
	default:
		return append(out, n.addrs...)
	}
}

// CountBranches returns the number of Internal nodes in the tree.
func CountBranches(n Node) int {
	if n.kind != KindInternal {
		return 0
	}
	count := 1
	for _, e := range n.children.Entries() {
		count += CountBranches(e.Node)
	}
	return count
}
