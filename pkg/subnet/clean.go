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

// Clean collapses chains of single-branch levels. Post-order, every child that cleans to
// an Internal node with exactly one entry is replaced, in its parent, by that entry: the
// most specific key of the chain survives. Leaves and nodes with two or more children
// keep their key. Finally a root left with a single Internal entry is replaced by it, so
// the only single-entry Internal node that may remain is a root over one Leaf.
func Clean(n Node) Node {
	out := clean(n)
	if out.IsInternal() && out.children.Len() == 1 {
		if only := out.children.At(0); only.Node.IsInternal() {
			return only.Node
		}
	}
	return out
}

func clean(n Node) Node {
	if n.IsLeaf() {
		return n
	}
	out := NewChildren()
	for _, e := range n.children.Entries() {
		c := clean(e.Node)
		if c.IsInternal() && c.children.Len() == 1 {
			inner := c.children.At(0)
			out.Set(inner.Key, inner.Node)
			continue
		}
		out.Set(e.Key, c)
	}
	return NewInternal(out)
}
