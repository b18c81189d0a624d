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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scorer = Scorer{OverlapSizeCutoff: 128}

func TestScore_Leaf(t *testing.T) {
	s := scorer.Score(leaf(t, "10.0.0.1", "10.0.0.2", "10.0.0.3"))
	require.True(t, s.IsLeaf())
	require.Equal(t, 1.0, s.MergeScore)
	require.Equal(t, 3, s.Size)
	require.Equal(t, float64(mustAddr(t, "10.0.0.2")), s.Mean)
	require.InDelta(t, math.Sqrt2, s.Spread, 1e-9)
}

func TestScore_Overlapping(t *testing.T) {
	s := scorer.Score(branch(t,
		"10.0.0.0/28", leaf(t, "10.0.0.1", "10.0.0.9"),
		"10.0.0.4/30", leaf(t, "10.0.0.4", "10.0.0.6"),
	))
	require.False(t, s.IsLeaf())
	require.Equal(t, 4, s.Size)
	require.Equal(t, float64(mustAddr(t, "10.0.0.5")), s.Mean)
	require.InDelta(t, math.Sqrt(34), s.Spread, 1e-9)
	require.InDelta(t, 0.6063, s.MergeScore, 1e-4)

	child, ok := s.Child("10.0.0.4/30")
	require.True(t, ok)
	require.Equal(t, 1.0, child.MergeScore)
	_, ok = s.Child("10.0.0.8/30")
	require.False(t, ok)
}

func TestScore_SingleChildIsTransparent(t *testing.T) {
	inner := branch(t,
		"10.0.0.0/28", leaf(t, "10.0.0.1", "10.0.0.9"),
		"10.0.0.4/30", leaf(t, "10.0.0.4", "10.0.0.6"),
	)
	wrapped := branch(t, "10.0.0.0/24", inner)
	require.Equal(t, scorer.Score(inner), scorer.Score(wrapped))

	s := scorer.Score(branch(t, "10.0.0.0/28", leaf(t, "10.0.0.1", "10.0.0.2")))
	require.True(t, s.IsLeaf())
	require.Equal(t, 1.0, s.MergeScore)
}

func TestScore_EmptyBranch(t *testing.T) {
	s := scorer.Score(NewInternal(nil))
	require.Equal(t, &Score{}, s)
	require.Empty(t, Candidates(s))
}

func TestScore_NoSpread(t *testing.T) {
	// 129 single-address leaves: the summary is combined from children whose spreads
	// are all zero, so the range of the branch is empty.
	c := NewChildren()
	for i := uint32(0); i < 129; i++ {
		a := Address(0x0a000001 + i*4)
		c.Set(NewKey(a, 30), NewLeaf([]Address{a}))
	}
	s := scorer.Score(NewInternal(c))
	require.Equal(t, 129, s.Size)
	require.Zero(t, s.Spread)
	require.Zero(t, s.MergeScore)
}

func scenarioC(t *testing.T) []Address {
	t.Helper()
	var addrs []Address
	for _, base := range []string{"10.0.0.0", "10.0.128.0"} {
		b := mustAddr(t, base)
		for i := 0; i < 65; i++ {
			addrs = append(addrs, b+Address(1+3*i))
		}
	}
	return addrs
}

func TestScore_WeightedAboveCutoff(t *testing.T) {
	addrs := scenarioC(t)
	tree := branch(t,
		"10.0.0.0/24", NewLeaf(addrs[:65]),
		"10.0.128.0/24", NewLeaf(addrs[65:]),
	)
	s := scorer.Score(tree)
	require.Equal(t, 130, s.Size)
	// combined from the children: each /24 contributes its own spread only
	require.InDelta(t, 453.784, s.Spread, 1e-3)
	require.InDelta(t, s.Children[0].Score.Spread, s.Spread, 1e-9)
	require.InDelta(t, (float64(addrs[0])+float64(addrs[129]))/2, s.Mean, 1e-6)
	require.Zero(t, s.MergeScore)

	exact := Scorer{OverlapSizeCutoff: 1000}.Score(tree)
	require.Greater(t, exact.Spread, 100*s.Spread)
	require.InDelta(t, 0.00243, exact.MergeScore, 1e-5)
}

func TestScore_NonNegative(t *testing.T) {
	addrs := mustAddrs(t,
		"10.0.0.1", "10.0.0.2", "10.0.0.9", "10.0.0.77", "10.0.0.130", "10.0.1.5",
		"10.0.3.3", "10.0.200.1", "10.7.0.1", "172.16.0.1", "172.16.0.2", "172.16.8.8",
	)
	for _, cutoff := range []int{0, 4, 128} {
		s := Scorer{OverlapSizeCutoff: cutoff}.Score(Clean(Merge(Group(addrs, 2), 2, 16)))
		require.Equal(t, len(addrs), s.Size)
		var walk func(s *Score)
		walk = func(s *Score) {
			assert.GreaterOrEqual(t, s.MergeScore, 0.0)
			assert.LessOrEqual(t, s.MergeScore, 1.0+1e-9)
			assert.GreaterOrEqual(t, s.Spread, 0.0)
			for _, c := range s.Children {
				walk(c.Score)
			}
		}
		walk(s)
	}
}
