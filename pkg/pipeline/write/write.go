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

package write

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/netobserv/subnet-finder/pkg/api"
	operationalMetrics "github.com/netobserv/subnet-finder/pkg/operational/metrics"
	"github.com/netobserv/subnet-finder/pkg/pipeline/encode"
	"github.com/prometheus/client_golang/prometheus"
)

// Writer delivers a report to one destination.
type Writer interface {
	Write(report *encode.Report) error
}

var recordsWritten = operationalMetrics.NewCounterVec(prometheus.CounterOpts{
	Name: operationalMetrics.Prefix + "records_written",
	Help: "Number of subnet clusters delivered, per writer",
}, []string{"writer"})

// NewWriter creates the writer of the configured type.
func NewWriter(params api.Write, clk clock.Clock) (Writer, error) {
	switch params.Type {
	case api.WriteTypeName("Stdout"):
		return NewWriteStdout(params.Stdout)
	case api.WriteTypeName("File"):
		return NewWriteFile(params.File)
	case api.WriteTypeName("S3"):
		return NewWriteS3(params.S3, clk)
	case api.WriteTypeName("Loki"):
		return NewWriteLoki(params.Loki, clk)
	}
	return nil, fmt.Errorf("unknown write type %q", params.Type)
}
