/*
 * Copyright (C) 2019 IBM, Inc.
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

package pipeline

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/netobserv/subnet-finder/pkg/config"
	operationalMetrics "github.com/netobserv/subnet-finder/pkg/operational/metrics"
	"github.com/netobserv/subnet-finder/pkg/pipeline/encode"
	"github.com/netobserv/subnet-finder/pkg/pipeline/ingest"
	"github.com/netobserv/subnet-finder/pkg/pipeline/transform"
	"github.com/netobserv/subnet-finder/pkg/pipeline/write"
	"github.com/netobserv/subnet-finder/pkg/subnet"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// stages of a run
const (
	StageIngest   = "ingest"
	StageParse    = "parse"
	StageInfer    = "infer"
	StageWrite    = "write"
	StageAnnotate = "annotate"
)

var (
	reservedDropped = operationalMetrics.NewCounter(prometheus.CounterOpts{
		Name: operationalMetrics.Prefix + "addresses_reserved_dropped",
		Help: "Number of distinct reserved addresses (0.0.0.0, 255.255.255.255) left out of the inference",
	})
	subnetsGrouped = operationalMetrics.NewGauge(prometheus.GaugeOpts{
		Name: operationalMetrics.Prefix + "subnets_grouped",
		Help: "Number of minimal subnets produced by the grouping stage of the last run",
	})
	treeBranches = operationalMetrics.NewGauge(prometheus.GaugeOpts{
		Name: operationalMetrics.Prefix + "tree_branches",
		Help: "Number of branch points in the final subnet tree of the last run",
	})
	mergesApplied = operationalMetrics.NewCounter(prometheus.CounterOpts{
		Name: operationalMetrics.Prefix + "merges_applied",
		Help: "Number of branches flattened into a single cluster",
	})
	stageDuration = operationalMetrics.NewHistogramVec(prometheus.HistogramOpts{
		Name:    operationalMetrics.Prefix + "stage_duration_seconds",
		Help:    "Time spent in each stage of a run",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	}, []string{"stage"})
)

// Pipeline runs ingest, inference, writers and the optional annotation, in that order.
type Pipeline struct {
	config    *config.Config
	ingester  ingest.Ingester
	writers   []write.Writer
	annotate  bool
	clock     clock.Clock
	stageTime func(stage string) func()
}

// NewPipeline creates every stage of the configuration.
func NewPipeline(cfg *config.Config) (*Pipeline, error) {
	return newPipeline(cfg, clock.New())
}

func newPipeline(cfg *config.Config, clk clock.Clock) (*Pipeline, error) {
	log.Debugf("entering NewPipeline")
	ingester, err := ingest.NewIngester(cfg.Ingest)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	writers := make([]write.Writer, 0, len(cfg.Writers))
	for i := range cfg.Writers {
		w, err := write.NewWriter(cfg.Writers[i], clk)
		if err != nil {
			return nil, fmt.Errorf("write %d (%s): %w", i, cfg.Writers[i].Type, err)
		}
		writers = append(writers, w)
	}
	p := &Pipeline{
		config:   cfg,
		ingester: ingester,
		writers:  writers,
		annotate: cfg.Annotate != nil,
		clock:    clk,
	}
	p.stageTime = func(stage string) func() {
		start := p.clock.Now()
		return func() {
			stageDuration.WithLabelValues(stage).Observe(p.clock.Since(start).Seconds())
		}
	}
	return p, nil
}

// Run executes the pipeline once and returns the report handed to the writers.
// ctx interrupts a blocking ingest; the inference itself is not interruptible.
func (p *Pipeline) Run(ctx context.Context) (*encode.Report, error) {
	done := p.stageTime(StageIngest)
	lines, err := p.ingester.Ingest(ctx)
	done()
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	done = p.stageTime(StageParse)
	addrs, err := subnet.ParseAddresses(lines)
	done()
	if err != nil {
		return nil, err
	}

	done = p.stageTime(StageInfer)
	subnetConfig := p.config.Inference.SubnetConfig()
	res, err := subnet.Infer(addrs, subnetConfig)
	done()
	if err != nil {
		return nil, err
	}
	report := encode.NewReport(res, subnet.CountRecords(lines), subnetConfig.ApplyMerges, p.clock.Now())
	reservedDropped.Add(float64(res.Reserved))
	subnetsGrouped.Set(float64(report.Summary.SubnetsGrouped))
	treeBranches.Set(float64(report.Summary.Branches))
	mergesApplied.Add(float64(report.Summary.MergesApplied))
	log.WithFields(log.Fields{
		"records":  report.Summary.InputRecords,
		"distinct": report.Summary.DistinctAddresses,
		"reserved": report.Summary.ReservedDropped,
		"groups":   report.Summary.SubnetsGrouped,
		"clusters": report.Summary.Clusters,
		"merges":   report.Summary.MergesApplied,
	}).Info("subnet inference done")

	done = p.stageTime(StageWrite)
	for i, w := range p.writers {
		if err := w.Write(report); err != nil {
			done()
			return nil, fmt.Errorf("write %d (%s): %w", i, p.config.Writers[i].Type, err)
		}
	}
	done()

	if p.annotate {
		defer p.stageTime(StageAnnotate)()
		annotator, err := transform.NewAnnotator(p.config.Annotate, res.Tree)
		if err != nil {
			return nil, fmt.Errorf("annotate: %w", err)
		}
		if err := annotator.Run(ctx); err != nil {
			return nil, fmt.Errorf("annotate: %w", err)
		}
	}
	return report, nil
}

