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

package write

import (
	"fmt"
	"io"
	"os"

	"github.com/netobserv/subnet-finder/pkg/api"
	"github.com/netobserv/subnet-finder/pkg/pipeline/encode"
	log "github.com/sirupsen/logrus"
)

type writeStdout struct {
	format string
	out    io.Writer
}

// Write prints the subnet document
func (t *writeStdout) Write(report *encode.Report) error {
	log.Debugf("entering writeStdout Write")
	b, err := encode.Encode(report.Subnets, t.format)
	if err != nil {
		return err
	}
	if _, err := t.out.Write(b); err != nil {
		return fmt.Errorf("can't write to stdout: %w", err)
	}
	recordsWritten.WithLabelValues(api.WriteTypeName("Stdout")).Add(float64(len(report.Clusters)))
	return nil
}

// NewWriteStdout create a new write
func NewWriteStdout(params *api.WriteStdout) (Writer, error) {
	log.Debugf("entering NewWriteStdout")
	var format string
	if params != nil {
		format = params.Format
	}
	return &writeStdout{
		format: format,
		out:    os.Stdout,
	}, nil
}

type writeFile struct {
	fileName string
	format   string
}

// Write stores the subnet document, replacing any previous content
func (t *writeFile) Write(report *encode.Report) error {
	log.Debugf("entering writeFile Write")
	b, err := encode.Encode(report.Subnets, t.format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(t.fileName, b, 0o644); err != nil {
		return fmt.Errorf("can't write %s: %w", t.fileName, err)
	}
	log.Infof("subnet document written to %s", t.fileName)
	recordsWritten.WithLabelValues(api.WriteTypeName("File")).Add(float64(len(report.Clusters)))
	return nil
}

// NewWriteFile create a new write
func NewWriteFile(params *api.WriteFile) (Writer, error) {
	log.Debugf("entering NewWriteFile")
	if params == nil || params.Filename == "" {
		return nil, fmt.Errorf("write filename not specified")
	}
	return &writeFile{
		fileName: params.Filename,
		format:   params.Format,
	}, nil
}
