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
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Config holds the inference thresholds.
type Config struct {
	// MinHostBits is the host-bit count grouping starts from (2 = /30).
	MinHostBits int
	// MaxHostBits is the coarsest merge level (16 = /16).
	MaxHostBits int
	// TopMergeCount is the number of highest scoring branches to flatten.
	TopMergeCount int
	// OverlapSizeCutoff is the branch size above which scoring combines child summaries
	// instead of recomputing from every address.
	OverlapSizeCutoff int
	// ApplyMerges selects whether the flattened tree or the cleaned tree is the result.
	ApplyMerges bool
}

func DefaultConfig() Config {
	return Config{
		MinHostBits:       2,
		MaxHostBits:       16,
		TopMergeCount:     8,
		OverlapSizeCutoff: 128,
		ApplyMerges:       true,
	}
}

func (c Config) Validate() error {
	if c.MinHostBits < 1 || c.MinHostBits > 32 {
		return fmt.Errorf("minHostBits must be in [1,32], got %d", c.MinHostBits)
	}
	if c.MaxHostBits < c.MinHostBits || c.MaxHostBits > 32 {
		return fmt.Errorf("maxHostBits must be in [minHostBits,32], got %d", c.MaxHostBits)
	}
	if c.TopMergeCount < 0 {
		return fmt.Errorf("topMergeCount must not be negative, got %d", c.TopMergeCount)
	}
	if c.OverlapSizeCutoff < 0 {
		return fmt.Errorf("overlapSizeCutoff must not be negative, got %d", c.OverlapSizeCutoff)
	}
	return nil
}

// Result exposes every intermediate stage of an inference run.
type Result struct {
	Distinct int
	Reserved int
	Groups   *Children
	Merged   Node
	Cleaned  Node
	Scores   *Score
	Selected []Candidate
	// Tree is the final tree: Cleaned with the selected merges applied, or Cleaned
	// itself when merges are not applied.
	Tree Node
}

// Infer runs grouping, merging, cleaning, scoring and merge selection over a sorted,
// de-duplicated address set.
func Infer(addrs []Address, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	res := &Result{Distinct: len(addrs)}
	for _, a := range addrs {
		if a.IsReserved() {
			res.Reserved++
		}
	}

	res.Groups = Group(addrs, cfg.MinHostBits)
	log.Debugf("grouped %d addresses into %d subnets", len(addrs)-res.Reserved, res.Groups.Len())

	res.Merged = Merge(res.Groups, cfg.MinHostBits, cfg.MaxHostBits)
	res.Cleaned = Clean(res.Merged)
	res.Scores = Scorer{OverlapSizeCutoff: cfg.OverlapSizeCutoff}.Score(res.Cleaned)

	merged, selected := SelectMerges(res.Cleaned, res.Scores, cfg.TopMergeCount)
	res.Selected = selected
	if cfg.ApplyMerges {
		res.Tree = merged
	} else {
		res.Tree = res.Cleaned
	}
	for _, c := range selected {
		log.WithFields(log.Fields{"path": c.Path, "score": c.MergeScore, "size": c.Size}).Debug("selected merge")
	}
	return res, nil
}
