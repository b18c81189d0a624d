/*
 * Copyright (C) 2022 IBM, Inc.
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

package operationalMetrics

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Prefix = "subnet_finder_"

type metricDefinition struct {
	Name   string
	Help   string
	Type   string
	Labels []string
}

var metricsOpts []metricDefinition

func define(name, help, metricType string, labels []string) {
	metricsOpts = append(metricsOpts, metricDefinition{
		Name:   name,
		Help:   help,
		Type:   metricType,
		Labels: labels,
	})
}

func NewCounter(opts prometheus.CounterOpts) prometheus.Counter {
	define(opts.Name, opts.Help, "counter", nil)
	return promauto.NewCounter(opts)
}

func NewCounterVec(opts prometheus.CounterOpts, labelNames []string) *prometheus.CounterVec {
	define(opts.Name, opts.Help, "counter", labelNames)
	return promauto.NewCounterVec(opts, labelNames)
}

func NewGauge(opts prometheus.GaugeOpts) prometheus.Gauge {
	define(opts.Name, opts.Help, "gauge", nil)
	return promauto.NewGauge(opts)
}

func NewHistogramVec(opts prometheus.HistogramOpts, labelNames []string) *prometheus.HistogramVec {
	define(opts.Name, opts.Help, "histogram", labelNames)
	return promauto.NewHistogramVec(opts, labelNames)
}

func GetDocumentation() string {
	doc := ""
	for _, opts := range metricsOpts {
		labels := "none"
		if len(opts.Labels) > 0 {
			labels = strings.Join(opts.Labels, ", ")
		}
		doc += fmt.Sprintf(
			`
### %s
| **Name** | %s | 
|:---|:---|
| **Description** | %s | 
| **Type** | %s | 
| **Labels** | %s | 

`,
			opts.Name,
			opts.Name,
			opts.Help,
			opts.Type,
			labels,
		)
	}

	return doc
}
