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
	"testing"

	"github.com/stretchr/testify/require"
)

func dominantBranchTree(t *testing.T) Node {
	return branch(t,
		"10.0.0.0/24", branch(t,
			"10.0.0.0/25", leaf(t, "10.0.0.10", "10.0.0.20", "10.0.0.30"),
			"10.0.0.128/25", leaf(t, "10.0.0.140", "10.0.0.150", "10.0.0.160"),
		),
		"10.1.0.0/24", branch(t,
			"10.1.0.0/30", leaf(t, "10.1.0.1", "10.1.0.2"),
			"10.1.0.4/30", leaf(t, "10.1.0.5", "10.1.0.6"),
		),
	)
}

func TestCandidates(t *testing.T) {
	scores := scorer.Score(dominantBranchTree(t))
	candidates := Candidates(scores)
	require.Len(t, candidates, 3)

	require.True(t, candidates[0].IsRoot)
	require.Empty(t, candidates[0].Path)
	require.Equal(t, 10, candidates[0].Size)
	require.InDelta(t, 0.00097, candidates[0].MergeScore, 1e-5)

	require.Equal(t, []int{0}, candidates[1].Path)
	require.Equal(t, "10.0.0.0/24", candidates[1].Key.String())
	require.InDelta(t, 0.0881, candidates[1].MergeScore, 1e-4)

	require.Equal(t, []int{1}, candidates[2].Path)
	require.Equal(t, "10.1.0.0/24", candidates[2].Key.String())
	require.InDelta(t, 0.1715, candidates[2].MergeScore, 1e-4)

	require.Empty(t, Candidates(scorer.Score(leaf(t, "10.0.0.1"))))
	require.Empty(t, Candidates(nil))
}

func TestSelectMerges_Top1(t *testing.T) {
	tree := dominantBranchTree(t)
	before := render(tree)
	merged, applied := SelectMerges(tree, scorer.Score(tree), 1)

	require.Len(t, applied, 1)
	require.Equal(t, []int{1}, applied[0].Path)
	require.Equal(t, []interface{}{
		"10.0.0.0/24", []interface{}{
			"10.0.0.0/25", []string{"10.0.0.10", "10.0.0.20", "10.0.0.30"},
			"10.0.0.128/25", []string{"10.0.0.140", "10.0.0.150", "10.0.0.160"},
		},
		"10.1.0.0/24", []string{"10.1.0.1", "10.1.0.2", "10.1.0.5", "10.1.0.6"},
	}, render(merged))
	require.Equal(t, before, render(tree))
}

func TestSelectMerges_DeepestFirst(t *testing.T) {
	tree := dominantBranchTree(t)
	merged, applied := SelectMerges(tree, scorer.Score(tree), 3)
	// the root takes one of the three slots but is not flattened
	require.Len(t, applied, 2)
	require.Equal(t, []int{1}, applied[0].Path)
	require.Equal(t, []int{0}, applied[1].Path)
	require.Equal(t, []interface{}{
		"10.0.0.0/24", []string{"10.0.0.10", "10.0.0.20", "10.0.0.30", "10.0.0.140", "10.0.0.150", "10.0.0.160"},
		"10.1.0.0/24", []string{"10.1.0.1", "10.1.0.2", "10.1.0.5", "10.1.0.6"},
	}, render(merged))
	require.Equal(t, Strings(Flatten(tree)), Strings(Flatten(merged)))
}

func TestSelectMerges_RootNeverFlattened(t *testing.T) {
	tree := branch(t,
		"10.0.0.0/24", leaf(t, "10.0.0.1", "10.0.0.2"),
		"10.0.128.0/24", leaf(t, "10.0.128.1", "10.0.128.2"),
	)
	scores := scorer.Score(tree)
	candidates := Candidates(scores)
	require.Len(t, candidates, 1)
	require.True(t, candidates[0].IsRoot)

	merged, applied := SelectMerges(tree, scores, 8)
	require.Empty(t, applied)
	require.True(t, merged.IsInternal())
	require.Equal(t, render(tree), render(merged))
}

func TestSelectMerges_Zero(t *testing.T) {
	tree := dominantBranchTree(t)
	for _, count := range []int{0, -1} {
		merged, applied := SelectMerges(tree, scorer.Score(tree), count)
		require.Empty(t, applied)
		require.Equal(t, render(tree), render(merged))
	}
}

func TestSelectMerges_CountAboveCandidates(t *testing.T) {
	tree := dominantBranchTree(t)
	_, applied := SelectMerges(tree, scorer.Score(tree), 100)
	require.Len(t, applied, 2)
}

func TestSelectMerges_ThroughSingleChild(t *testing.T) {
	tree := branch(t,
		"10.0.0.0/16", branch(t,
			"10.0.0.0/20", branch(t,
				"10.0.0.0/24", leaf(t, "10.0.0.1", "10.0.0.2"),
				"10.0.1.0/24", leaf(t, "10.0.1.1", "10.0.1.2"),
			),
		),
		"10.9.0.0/24", leaf(t, "10.9.0.1", "10.9.0.2"),
	)
	merged, applied := SelectMerges(tree, scorer.Score(tree), 2)
	require.Len(t, applied, 1)
	require.Equal(t, []int{0}, applied[0].Path)
	require.Equal(t, 4, applied[0].Size)
	require.Equal(t, []interface{}{
		"10.0.0.0/16", []interface{}{
			"10.0.0.0/20", []string{"10.0.0.1", "10.0.0.2", "10.0.1.1", "10.0.1.2"},
		},
		"10.9.0.0/24", []string{"10.9.0.1", "10.9.0.2"},
	}, render(merged))
}

func TestFlattenAt_InvalidPath(t *testing.T) {
	tree := dominantBranchTree(t)
	for _, path := range [][]int{{2}, {-1}, {0, 0}, {1, 1, 0}} {
		out, ok := flattenAt(tree, path)
		require.False(t, ok, "path %v", path)
		require.Equal(t, render(tree), render(out))
	}
	_, ok := flattenAt(leaf(t, "10.0.0.1"), nil)
	require.False(t, ok)
}
