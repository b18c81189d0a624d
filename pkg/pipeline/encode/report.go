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

package encode

import (
	"time"

	"github.com/netobserv/subnet-finder/pkg/subnet"
)

// Summary describes one inference run.
type Summary struct {
	InputRecords      int    `json:"inputRecords" yaml:"inputRecords" mapstructure:"input_records"`
	DistinctAddresses int    `json:"distinctAddresses" yaml:"distinctAddresses" mapstructure:"distinct_addresses"`
	ReservedDropped   int    `json:"reservedDropped" yaml:"reservedDropped" mapstructure:"reserved_dropped"`
	SubnetsGrouped    int    `json:"subnetsGrouped" yaml:"subnetsGrouped" mapstructure:"subnets_grouped"`
	Branches          int    `json:"branches" yaml:"branches" mapstructure:"branches"`
	MergesApplied     int    `json:"mergesApplied" yaml:"mergesApplied" mapstructure:"merges_applied"`
	Clusters          int    `json:"clusters" yaml:"clusters" mapstructure:"clusters"`
	GeneratedAt       string `json:"generatedAt" yaml:"generatedAt" mapstructure:"generated_at"`
}

// Cluster is a terminal cluster of the final tree.
type Cluster struct {
	Subnet    string   `json:"subnet"`
	Addresses []string `json:"addresses"`
}

// Report is what writers receive: the output document, with its summary and its
// terminal clusters.
type Report struct {
	Summary  Summary
	Subnets  Document
	Clusters []Cluster
	Tree     subnet.Node
}

// NewReport builds the report of an inference result.
func NewReport(res *subnet.Result, inputRecords int, applyMerges bool, generatedAt time.Time) *Report {
	clusters := Clusters(res.Tree)
	merges := 0
	if applyMerges {
		merges = len(res.Selected)
	}
	return &Report{
		Summary: Summary{
			InputRecords:      inputRecords,
			DistinctAddresses: res.Distinct,
			ReservedDropped:   res.Reserved,
			SubnetsGrouped:    res.Groups.Len(),
			Branches:          subnet.CountBranches(res.Tree),
			MergesApplied:     merges,
			Clusters:          len(clusters),
			GeneratedAt:       generatedAt.UTC().Format(time.RFC3339),
		},
		Subnets:  NewDocument(res.Tree),
		Clusters: clusters,
		Tree:     res.Tree,
	}
}

// Clusters lists the terminal clusters of a tree, in document order.
func Clusters(tree subnet.Node) []Cluster {
	if tree.IsLeaf() {
		addrs := tree.Addresses()
		if len(addrs) == 0 {
			return nil
		}
		return []Cluster{{Subnet: subnet.CommonSupernet(addrs).String(), Addresses: subnet.Strings(addrs)}}
	}
	return appendClusters(nil, tree.Children())
}

func appendClusters(out []Cluster, children *subnet.Children) []Cluster {
	for _, e := range children.Entries() {
		if e.Node.IsLeaf() {
			out = append(out, Cluster{Subnet: e.Key.String(), Addresses: subnet.Strings(e.Node.Addresses())})
			continue
		}
		out = appendClusters(out, e.Node.Children())
	}
	return out
}
