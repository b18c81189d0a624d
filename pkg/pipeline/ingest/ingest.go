/*
 * Copyright (C) 2021 IBM, Inc.
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

package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/netobserv/subnet-finder/pkg/api"
	operationalMetrics "github.com/netobserv/subnet-finder/pkg/operational/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Ingester reads the raw address records of a run.
type Ingester interface {
	Ingest(ctx context.Context) ([]string, error)
}

var recordsIngested = operationalMetrics.NewCounterVec(prometheus.CounterOpts{
	Name: operationalMetrics.Prefix + "addresses_ingested",
	Help: "Number of address records read",
}, []string{"type"})

// NewIngester creates the ingester of the configured type.
func NewIngester(params api.Ingest) (Ingester, error) {
	switch params.Type {
	case api.IngestTypeName("File"):
		return NewIngestFile(params.File)
	case api.IngestTypeName("Kafka"):
		return NewIngestKafka(params.Kafka)
	case api.IngestTypeName("S3"):
		return NewIngestS3(params.S3)
	case api.IngestTypeName("Synthetic"):
		return NewIngestSynthetic(params.Synthetic)
	}
	return nil, fmt.Errorf("unknown ingest type %q", params.Type)
}

// readLines returns the trimmed lines of in. Blank lines are kept as empty
// records so that each record index maps to its line.
func readLines(ctx context.Context, in io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
