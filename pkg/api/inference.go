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

package api

import (
	"fmt"

	"github.com/netobserv/subnet-finder/pkg/subnet"
)

type Inference struct {
	MinHostBits       int   `yaml:"minHostBits,omitempty" json:"minHostBits,omitempty" doc:"host bits of the finest subnet considered when grouping addresses (default: 2, i.e. /30)"`
	MaxHostBits       int   `yaml:"maxHostBits,omitempty" json:"maxHostBits,omitempty" doc:"host bits of the coarsest merge level (default: 16, i.e. /16)"`
	TopMergeCount     *int  `yaml:"topMergeCount,omitempty" json:"topMergeCount,omitempty" doc:"number of highest scoring branches flattened into a single group (default: 8)"`
	OverlapSizeCutoff *int  `yaml:"overlapSizeCutoff,omitempty" json:"overlapSizeCutoff,omitempty" doc:"branch size above which scores are combined from the children instead of recomputed (default: 128)"`
	ApplyMerges       *bool `yaml:"applyMerges,omitempty" json:"applyMerges,omitempty" doc:"emit the tree with the selected merges applied (default: true)"`
}

// SetDefaults fills unset thresholds.
func (i *Inference) SetDefaults() {
	d := subnet.DefaultConfig()
	if i.MinHostBits == 0 {
		i.MinHostBits = d.MinHostBits
	}
	if i.MaxHostBits == 0 {
		i.MaxHostBits = d.MaxHostBits
	}
	if i.TopMergeCount == nil {
		i.TopMergeCount = &d.TopMergeCount
	}
	if i.OverlapSizeCutoff == nil {
		i.OverlapSizeCutoff = &d.OverlapSizeCutoff
	}
	if i.ApplyMerges == nil {
		i.ApplyMerges = &d.ApplyMerges
	}
}

// SubnetConfig converts to the inference engine configuration. Unset values take their defaults.
func (i *Inference) SubnetConfig() subnet.Config {
	c := *i
	c.SetDefaults()
	return subnet.Config{
		MinHostBits:       c.MinHostBits,
		MaxHostBits:       c.MaxHostBits,
		TopMergeCount:     *c.TopMergeCount,
		OverlapSizeCutoff: *c.OverlapSizeCutoff,
		ApplyMerges:       *c.ApplyMerges,
	}
}

func (i *Inference) Validate() error {
	if err := i.SubnetConfig().Validate(); err != nil {
		return fmt.Errorf("invalid inference settings: %w", err)
	}
	return nil
}
