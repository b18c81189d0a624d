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

package transform

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/netip"
	"os"

	"github.com/gaissmai/bart"
	jsoniter "github.com/json-iterator/go"
	"github.com/netobserv/subnet-finder/pkg/api"
	"github.com/netobserv/subnet-finder/pkg/config"
	operationalMetrics "github.com/netobserv/subnet-finder/pkg/operational/metrics"
	"github.com/netobserv/subnet-finder/pkg/subnet"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const maxRecordSize = 1024 * 1024

var (
	recordsAnnotated = operationalMetrics.NewCounter(prometheus.CounterOpts{
		Name: operationalMetrics.Prefix + "records_annotated",
		Help: "Number of records that received an inferred subnet",
	})
	jsonLines = jsoniter.Config{
		EscapeHTML:  true,
		SortMapKeys: true,
		UseNumber:   true,
	}.Froze()
)

var _ Transformer = (*Annotator)(nil)

// Annotator sets, on each record, the most specific inferred subnet holding the record address.
type Annotator struct {
	params api.Annotate
	table  *bart.Fast[string]
	stdin  io.Reader
	stdout io.Writer
}

// NewAnnotator indexes every subnet of the tree for longest-prefix lookups.
func NewAnnotator(params *api.Annotate, tree subnet.Node) (*Annotator, error) {
	log.Debugf("entering NewAnnotator")
	if params == nil {
		return nil, errors.New("missing annotate configuration")
	}
	if params.Input == "" || params.Output == "" {
		return nil, errors.New("annotate input and output fields must be set")
	}
	table := new(bart.Fast[string])
	if tree.IsLeaf() {
		if addrs := tree.Addresses(); len(addrs) > 0 {
			insert(table, subnet.CommonSupernet(addrs))
		}
	} else {
		indexChildren(table, tree.Children())
	}
	log.Debugf("annotate table holds %d subnets", table.Size4())
	return &Annotator{
		params: *params,
		table:  table,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}, nil
}

func indexChildren(table *bart.Fast[string], children *subnet.Children) {
	for _, e := range children.Entries() {
		insert(table, e.Key)
		if e.Node.IsInternal() {
			indexChildren(table, e.Node.Children())
		}
	}
}

func insert(table *bart.Fast[string], k subnet.Key) {
	table.Insert(k.Prefix(), k.String())
}

// Lookup returns the most specific inferred subnet holding ip.
func (a *Annotator) Lookup(ip netip.Addr) (string, bool) {
	if !ip.IsValid() {
		return "", false
	}
	return a.table.Lookup(ip.Unmap())
}

// Annotate sets the output field of record when its input address is covered.
func (a *Annotator) Annotate(record config.GenericMap) bool {
	anyIP, ok := record[a.params.Input]
	if !ok {
		return false
	}
	var ip netip.Addr
	if ip, ok = anyIP.(netip.Addr); !ok {
		if strIP, ok := anyIP.(string); ok {
			ip, _ = netip.ParseAddr(strIP)
		}
	}
	cidr, found := a.Lookup(ip)
	if !found {
		return false
	}
	record[a.params.Output] = cidr
	recordsAnnotated.Inc()
	return true
}

// Transform annotates copies of the records.
func (a *Annotator) Transform(in []config.GenericMap) []config.GenericMap {
	out := make([]config.GenericMap, 0, len(in))
	for _, record := range in {
		record = record.Copy()
		a.Annotate(record)
		out = append(out, record)
	}
	return out
}

// Run annotates the JSON-lines records of the configured file into the output file.
func (a *Annotator) Run(ctx context.Context) error {
	in := a.stdin
	if a.params.Filename != config.StdStream {
		file, err := os.Open(a.params.Filename)
		if err != nil {
			return fmt.Errorf("can't open records: %w", err)
		}
		defer file.Close()
		in = file
	}
	out := a.stdout
	if a.params.OutputFilename != "" && a.params.OutputFilename != config.StdStream {
		file, err := os.Create(a.params.OutputFilename)
		if err != nil {
			return fmt.Errorf("can't create annotated output: %w", err)
		}
		defer file.Close()
		out = file
	}

	writer := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	line, annotated := 0, 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var record config.GenericMap
		if err := jsonLines.Unmarshal(scanner.Bytes(), &record); err != nil {
			return fmt.Errorf("record %d: %w", line, err)
		}
		if a.Annotate(record) {
			annotated++
		}
		b, err := jsonLines.Marshal(record)
		if err != nil {
			return fmt.Errorf("record %d: %w", line, err)
		}
		if _, err := writer.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	log.WithFields(log.Fields{"records": line, "annotated": annotated}).Info("annotation done")
	return writer.Flush()
}
