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

// Merge coalesces grouped subnets bottom-up, one host-bit level at a time from
// minHostBits to maxHostBits, and returns the last level as the Internal root.
// At each level an entry finer than the level is carried forward, an entry exactly at
// the level is joined with what already accumulated under its key, and a coarser one
// is nested under its enclosing supernet.
func Merge(groups *Children, minHostBits, maxHostBits int) Node {
	level := groups
	for hostBits := minHostBits; hostBits <= maxHostBits; hostBits++ {
		level = mergeLevel(level, hostBits)
	}
	if level == nil {
		level = NewChildren()
	}
	return NewInternal(level)
}

func mergeLevel(level *Children, hostBits int) *Children {
	upper := NewChildren()
	for _, e := range level.Entries() {
		prev := e.Key.HostBits()
		switch {
		case hostBits < prev:
			upper.Set(e.Key, e.Node)
		case hostBits == prev:
			upper.Set(e.Key, Join(accumulated(upper, e.Key), e.Node))
		default:
			super := KeyFromHostBits(e.Key.Network, hostBits)
			nested := NewInternal(ChildrenOf(e))
			upper.Set(super, Join(accumulated(upper, super), nested))
		}
	}
	return upper
}

func accumulated(c *Children, k Key) Node {
	if n, ok := c.Get(k); ok {
		return n
	}
	return NewInternal(nil)
}

// Join combines two subtrees.
//   - Leaf with Leaf: sorted union of the addresses.
//   - Internal with Internal: union of keys, keys present in both joined recursively;
//     a's order first, then keys only present in b.
//   - Leaf with Internal: addresses attached directly at a level rule out any finer
//     partition of that level, so the Internal side is flattened into one sorted Leaf.
func Join(a, b Node) Node {
	switch {
	case a.IsLeaf() && b.IsLeaf():
		return NewLeaf(union(a.addrs, b.addrs))
	case a.IsInternal() && b.IsInternal():
		out := NewChildren()
		for _, e := range a.children.Entries() {
			if other, ok := b.children.Get(e.Key); ok {
				out.Set(e.Key, Join(e.Node, other))
			} else {
				out.Set(e.Key, e.Node)
			}
		}
		for _, e := range b.children.Entries() {
			if _, ok := a.children.Get(e.Key); !ok {
				out.Set(e.Key, e.Node)
			}
		}
		return NewInternal(out)
	case a.IsLeaf():
		return NewLeaf(union(a.addrs, collect(b, nil)))
	default:
		return NewLeaf(union(b.addrs, collect(a, nil)))
	}
}

func union(a, b []Address) []Address {
	out := make([]Address, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)
	return slices.Compact(out)
}
