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

package config

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/netobserv/subnet-finder/pkg/api"
	log "github.com/sirupsen/logrus"
)

// Options holds the raw command line values. Structured sections are JSON strings.
type Options struct {
	Input     string
	Format    string
	Ingest    string
	Write     string
	Annotate  string
	Inference InferenceOptions
	Metrics   MetricsOptions
}

type InferenceOptions struct {
	MinHostBits       int
	MaxHostBits       int
	TopMergeCount     int
	OverlapSizeCutoff int
	ApplyMerges       bool
}

type MetricsOptions struct {
	Address string
	Port    int
	TLS     string
}

// Config is the parsed and validated configuration of a run.
type Config struct {
	Ingest    api.Ingest          `yaml:"ingest" json:"ingest"`
	Writers   []api.Write         `yaml:"write" json:"write"`
	Annotate  *api.Annotate       `yaml:"annotate,omitempty" json:"annotate,omitempty"`
	Inference api.Inference       `yaml:"inference" json:"inference"`
	Metrics   api.MetricsSettings `yaml:"metrics" json:"metrics"`
}

const StdStream = "-"

// ParseConfig creates the internal unmarshalled representation from the command line options
func ParseConfig(opts *Options) (Config, error) {
	out := Config{}

	log.Debugf("opts.Ingest = %v ", opts.Ingest)
	switch {
	case opts.Ingest != "" && opts.Input != "":
		return out, errors.New("input and ingest options are mutually exclusive")
	case opts.Ingest != "":
		if err := JsonUnmarshalStrict([]byte(opts.Ingest), &out.Ingest); err != nil {
			log.Errorf("error when parsing ingest: %v", err)
			return out, fmt.Errorf("invalid ingest: %w", err)
		}
	default:
		input := opts.Input
		if input == "" {
			input = StdStream
		}
		out.Ingest = api.Ingest{Type: api.IngestTypeName("File"), File: &api.IngestFile{Filename: input}}
	}
	if err := validateIngest(&out.Ingest); err != nil {
		return out, err
	}

	log.Debugf("opts.Write = %v ", opts.Write)
	switch {
	case opts.Write != "" && opts.Format != "":
		return out, errors.New("format and write options are mutually exclusive")
	case opts.Write != "":
		if err := JsonUnmarshalStrict([]byte(opts.Write), &out.Writers); err != nil {
			log.Errorf("error when parsing write: %v", err)
			return out, fmt.Errorf("invalid write: %w", err)
		}
	default:
		out.Writers = []api.Write{{Type: api.WriteTypeName("Stdout"), Stdout: &api.WriteStdout{Format: opts.Format}}}
	}
	if len(out.Writers) == 0 {
		return out, errors.New("at least one writer is required")
	}
	for i := range out.Writers {
		if err := validateWrite(&out.Writers[i]); err != nil {
			return out, fmt.Errorf("write[%d]: %w", i, err)
		}
	}

	if opts.Annotate != "" {
		out.Annotate = &api.Annotate{}
		if err := JsonUnmarshalStrict([]byte(opts.Annotate), out.Annotate); err != nil {
			return out, fmt.Errorf("invalid annotate: %w", err)
		}
		if err := validateAnnotate(out.Annotate); err != nil {
			return out, err
		}
	}

	topMergeCount := opts.Inference.TopMergeCount
	overlapSizeCutoff := opts.Inference.OverlapSizeCutoff
	applyMerges := opts.Inference.ApplyMerges
	out.Inference = api.Inference{
		MinHostBits:       opts.Inference.MinHostBits,
		MaxHostBits:       opts.Inference.MaxHostBits,
		TopMergeCount:     &topMergeCount,
		OverlapSizeCutoff: &overlapSizeCutoff,
		ApplyMerges:       &applyMerges,
	}
	out.Inference.SetDefaults()
	if err := out.Inference.Validate(); err != nil {
		return out, err
	}

	out.Metrics = api.MetricsSettings{Address: opts.Metrics.Address, Port: opts.Metrics.Port}
	if opts.Metrics.TLS != "" {
		out.Metrics.TLS = &api.ServerTLS{}
		if err := JsonUnmarshalStrict([]byte(opts.Metrics.TLS), out.Metrics.TLS); err != nil {
			return out, fmt.Errorf("invalid metrics TLS: %w", err)
		}
	}
	log.Debugf("config = %+v ", out)
	return out, nil
}

func validateIngest(in *api.Ingest) error {
	var missing bool
	switch in.Type {
	case api.IngestTypeName("File"):
		missing = in.File == nil || in.File.Filename == ""
	case api.IngestTypeName("Kafka"):
		missing = in.Kafka == nil || len(in.Kafka.Brokers) == 0 || in.Kafka.Topic == ""
	case api.IngestTypeName("S3"):
		missing = in.S3 == nil || in.S3.Bucket == "" || in.S3.Object == ""
	case api.IngestTypeName("Synthetic"):
		missing = in.Synthetic == nil || len(in.Synthetic.CIDRs) == 0
	default:
		return fmt.Errorf("unknown ingest type %q", in.Type)
	}
	if missing {
		return fmt.Errorf("missing or incomplete %s ingest section", in.Type)
	}
	return nil
}

func validateWrite(w *api.Write) error {
	var format string
	switch w.Type {
	case api.WriteTypeName("Stdout"):
		if w.Stdout == nil {
			w.Stdout = &api.WriteStdout{}
		}
		format = w.Stdout.Format
	case api.WriteTypeName("File"):
		if w.File == nil || w.File.Filename == "" {
			return errors.New("missing file writer filename")
		}
		format = w.File.Format
	case api.WriteTypeName("S3"):
		if w.S3 == nil || w.S3.Bucket == "" {
			return errors.New("missing s3 writer bucket")
		}
	case api.WriteTypeName("Loki"):
		if w.Loki == nil {
			w.Loki = &api.WriteLoki{}
		}
	default:
		return fmt.Errorf("unknown write type %q", w.Type)
	}
	switch format {
	case "", api.FormatName("JSON"), api.FormatName("YAML"):
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func validateAnnotate(a *api.Annotate) error {
	if a.Filename == "" || a.Input == "" || a.Output == "" {
		return errors.New("annotate requires filename, input and output")
	}
	if a.OutputFilename == "" {
		a.OutputFilename = StdStream
	}
	return nil
}

var strictJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
}.Froze()

// JsonUnmarshalStrict is like Unmarshal except that any fields that are found
// in the data that do not have corresponding struct members, or mapping
// keys that are duplicates, will result in an error.
func JsonUnmarshalStrict(data []byte, v interface{}) error {
	return strictJSON.Unmarshal(data, v)
}
