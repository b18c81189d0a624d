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

// Entry is one (subnet, subtree) pair of an Internal node.
type Entry struct {
	Key  Key
	Node Node
}

// Children is an insertion-ordered mapping from Key to Node.
// Lookups work by key or by position; replacing the value of an existing key keeps its
// position, so positional indices stay valid across Set calls on existing keys.
type Children struct {
	entries []Entry
	index   map[Key]int
}

func NewChildren() *Children {
	return &Children{index: map[Key]int{}}
}

// Len returns the number of entries.
func (c *Children) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Get returns the node stored under k.
func (c *Children) Get(k Key) (Node, bool) {
	i, ok := c.index[k]
	if !ok {
		return Node{}, false
	}
	return c.entries[i].Node, true
}

// Set stores n under k, appending k if it is new.
func (c *Children) Set(k Key, n Node) {
	if i, ok := c.index[k]; ok {
		c.entries[i].Node = n
		return
	}
	c.index[k] = len(c.entries)
	c.entries = append(c.entries, Entry{Key: k, Node: n})
}

// At returns the entry at position i.
func (c *Children) At(i int) Entry {
	return c.entries[i]
}

// SetAt replaces the node at position i, keeping its key.
func (c *Children) SetAt(i int, n Node) {
	c.entries[i].Node = n
}

// Entries returns the entries in insertion order. The slice must not be modified.
func (c *Children) Entries() []Entry {
	if c == nil {
		return nil
	}
	return c.entries
}

// Keys returns the keys in insertion order.
func (c *Children) Keys() []Key {
	keys := make([]Key, 0, c.Len())
	for _, e := range c.Entries() {
		keys = append(keys, e.Key)
	}
	return keys
}

// Copy returns a shallow copy: same nodes, independent ordering and index.
func (c *Children) Copy() *Children {
	out := &Children{
		entries: make([]Entry, len(c.entries)),
		index:   make(map[Key]int, len(c.index)),
	}
	copy(out.entries, c.entries)
	for k, v := range c.index {
		out.index[k] = v
	}
	return out
}

// ChildrenOf builds a Children mapping from entries, in order.
func ChildrenOf(entries ...Entry) *Children {
	c := NewChildren()
	for _, e := range entries {
		c.Set(e.Key, e.Node)
	}
	return c
}
