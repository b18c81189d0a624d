/*
 * Copyright (C) 2021 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *	 http://www.apache.org/licenses/LICENSE-2.0
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
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/netobserv/subnet-finder/pkg/api"
	"github.com/netobserv/subnet-finder/pkg/config"
	"github.com/netobserv/subnet-finder/pkg/subnet"
	log "github.com/sirupsen/logrus"
)

type ingestFile struct {
	fileName string
	stdin    io.Reader
}

// Ingest reads one address per line from the file, or from stdin
func (r *ingestFile) Ingest(ctx context.Context) ([]string, error) {
	in := r.stdin
	if r.fileName != config.StdStream {
		file, err := os.Open(r.fileName)
		if err != nil {
			return nil, fmt.Errorf("can't open input: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		in = file
	}
	lines, err := readLines(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("can't read %s: %w", r.fileName, err)
	}
	records := subnet.CountRecords(lines)
	log.Infof("Ingesting %d address lines from %s", records, r.fileName)
	recordsIngested.WithLabelValues(api.IngestTypeName("File")).Add(float64(records))
	return lines, nil
}

// NewIngestFile create a new ingester
func NewIngestFile(params *api.IngestFile) (Ingester, error) {
	log.Debugf("entering NewIngestFile")
	if params == nil || params.Filename == "" {
		return nil, errors.New("ingest filename not specified")
	}

	log.Infof("input file name = %s", params.Filename)

	return &ingestFile{
		fileName: params.Filename,
		stdin:    os.Stdin,
	}, nil
}
