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

import "math"

// rangeSpreads is the half-width of a cluster's estimated range, in spreads.
const rangeSpreads = 2

// Score summarizes a subtree: the distribution of its addresses and how plausible it is
// to report its children as a single group. Children is nil for a Leaf summary.
type Score struct {
	MergeScore float64
	Mean       float64
	// Spread is the square root of the sum (not the mean) of squared deviations.
	Spread   float64
	Size     int
	Children []ScoreEntry
}

// ScoreEntry is one child summary, in the same order as the tree's children.
type ScoreEntry struct {
	Key   Key
	Score *Score
}

// IsLeaf is true for summaries of Leaf nodes.
func (s *Score) IsLeaf() bool {
	return s.Children == nil
}

// Child returns the child summary for a CIDR string such as "10.0.0.0/24".
func (s *Score) Child(cidr string) (*Score, bool) {
	for _, c := range s.Children {
		if c.Key.String() == cidr {
			return c.Score, true
		}
	}
	return nil, false
}

// Scorer computes Score trees. Above OverlapSizeCutoff addresses the mean and spread of
// a branch are combined from its children (weighted mean, weighted RMS of spreads)
// instead of being recomputed from every address.
type Scorer struct {
	OverlapSizeCutoff int
}

// Score returns the summary tree of n. An Internal node with a single child is
// transparent: it yields the child's summary.
func (s Scorer) Score(n Node) *Score {
	if n.IsLeaf() {
		return leafScore(n.addrs)
	}
	switch n.children.Len() {
	case 0:
		return &Score{}
	case 1:
		return s.Score(n.children.At(0).Node)
	}

	out := &Score{Children: make([]ScoreEntry, 0, n.children.Len())}
	for _, e := range n.children.Entries() {
		cs := s.Score(e.Node)
		out.Children = append(out.Children, ScoreEntry{Key: e.Key, Score: cs})
		out.Size += cs.Size
	}
	if out.Size == 0 {
		return out
	}

	if out.Size > s.OverlapSizeCutoff {
		var weightedMean, weightedVar float64
		for _, c := range out.Children {
			weightedMean += c.Score.Mean / float64(out.Size) * float64(c.Score.Size)
			weightedVar += c.Score.Spread * c.Score.Spread * float64(c.Score.Size)
		}
		out.Mean = weightedMean
		out.Spread = math.Sqrt(weightedVar / float64(out.Size))
	} else {
		out.Mean, out.Spread = stats(Flatten(n))
	}

	minVal := out.Mean - rangeSpreads*out.Spread
	maxVal := out.Mean + rangeSpreads*out.Spread
	if maxVal <= minVal {
		return out
	}
	var common float64
	for _, c := range out.Children {
		lo := math.Max(c.Score.Mean-rangeSpreads*c.Score.Spread, minVal)
		hi := math.Min(c.Score.Mean+rangeSpreads*c.Score.Spread, maxVal)
		if lo < hi {
			common += (hi - lo) * float64(c.Score.Size)
		}
	}
	out.MergeScore = common / float64(out.Size) / (maxVal - minVal)
	return out
}

func leafScore(addrs []Address) *Score {
	mean, spread := stats(addrs)
	return &Score{MergeScore: 1, Mean: mean, Spread: spread, Size: len(addrs)}
}

func stats(addrs []Address) (mean, spread float64) {
	if len(addrs) == 0 {
		return 0, 0
	}
	for _, a := range addrs {
		mean += float64(a)
	}
	mean /= float64(len(addrs))
	var sq float64
	for _, a := range addrs {
		d := float64(a) - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq)
}
