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

import (
	"slices"
	"sort"
)

// Candidate is a branch that may be flattened into a single group.
// Path holds the positional child indices from the root; an empty Path is the root.
type Candidate struct {
	MergeScore float64
	Path       []int
	Size       int
	Key        Key
	IsRoot     bool
}

// Candidates lists every branch summary of the score tree in pre-order.
// Leaf summaries are neither recorded nor descended into.
func Candidates(root *Score) []Candidate {
	if root == nil || root.IsLeaf() {
		return nil
	}
	out := []Candidate{{MergeScore: root.MergeScore, Size: root.Size, IsRoot: true}}
	return appendCandidates(out, root, nil)
}

func appendCandidates(out []Candidate, s *Score, path []int) []Candidate {
	for i, c := range s.Children {
		if c.Score.IsLeaf() {
			continue
		}
		childPath := append(slices.Clone(path), i)
		out = append(out, Candidate{MergeScore: c.Score.MergeScore, Path: childPath, Size: c.Score.Size, Key: c.Key})
		out = appendCandidates(out, c.Score, childPath)
	}
	return out
}

// SelectMerges flattens the top-count highest scoring branches of tree and returns the
// new tree together with the candidates that were applied. tree is not modified: each
// merge rebuilds the nodes along its path. Selected candidates are applied deepest
// first; a flattened branch keeps its position in its parent, so the positions of the
// remaining shallower candidates stay valid. The root competes for a slot but is never
// flattened since it has no parent entry to replace. A path that no longer leads to a
// branch is skipped as well.
func SelectMerges(tree Node, scores *Score, count int) (Node, []Candidate) {
	candidates := Candidates(scores)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MergeScore > candidates[j].MergeScore
	})
	count = max(count, 0)
	if count < len(candidates) {
		candidates = candidates[:count]
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].Path) > len(candidates[j].Path)
	})

	applied := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.IsRoot {
			continue
		}
		merged, ok := flattenAt(tree, c.Path)
		if !ok {
			continue
		}
		tree = merged
		applied = append(applied, c)
	}
	return tree, applied
}

// flattenAt follows path by child position, stepping transparently through single-child
// branches the same way Scorer does, and replaces the target branch with a Leaf.
func flattenAt(n Node, path []int) (Node, bool) {
	if !n.IsInternal() {
		return n, false
	}
	if n.children.Len() == 1 {
		only := n.children.At(0)
		sub, ok := flattenAt(only.Node, path)
		if !ok {
			return n, false
		}
		return NewInternal(ChildrenOf(Entry{Key: only.Key, Node: sub})), true
	}
	if len(path) == 0 {
		return NewLeaf(Flatten(n)), true
	}
	i := path[0]
	if i < 0 || i >= n.children.Len() {
		return n, false
	}
	sub, ok := flattenAt(n.children.At(i).Node, path[1:])
	if !ok {
		return n, false
	}
	c := n.children.Copy()
	c.SetAt(i, sub)
	return NewInternal(c), true
}
