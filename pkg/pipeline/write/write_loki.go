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

package write

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	logAdapter "github.com/go-kit/kit/log/logrus"
	jsonIter "github.com/json-iterator/go"
	"github.com/netobserv/loki-client-go/loki"
	"github.com/netobserv/loki-client-go/pkg/backoff"
	"github.com/netobserv/loki-client-go/pkg/urlutil"
	"github.com/netobserv/subnet-finder/pkg/api"
	"github.com/netobserv/subnet-finder/pkg/pipeline/encode"
	"github.com/prometheus/common/model"
	log "github.com/sirupsen/logrus"
)

const subnetLabel = "subnet"

type emitter interface {
	Handle(labels model.LabelSet, timestamp time.Time, record string) error
	Stop()
}

// Loki cluster writer
type Loki struct {
	lokiConfig loki.Config
	apiConfig  api.WriteLoki
	client     emitter
	clock      clock.Clock
}

type lokiLine struct {
	Subnet    string   `json:"subnet"`
	Size      int      `json:"size"`
	Addresses []string `json:"addresses"`
}

func buildLokiConfig(c *api.WriteLoki) (loki.Config, error) {
	batchWait, err := time.ParseDuration(c.BatchWait)
	if err != nil {
		return loki.Config{}, fmt.Errorf("failed in parsing BatchWait : %w", err)
	}

	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return loki.Config{}, fmt.Errorf("failed in parsing Timeout : %w", err)
	}

	minBackoff, err := time.ParseDuration(c.MinBackoff)
	if err != nil {
		return loki.Config{}, fmt.Errorf("failed in parsing MinBackoff : %w", err)
	}

	maxBackoff, err := time.ParseDuration(c.MaxBackoff)
	if err != nil {
		return loki.Config{}, fmt.Errorf("failed in parsing MaxBackoff : %w", err)
	}

	authorization := ""
	if c.BearerAuthTokenPath != "" {
		bytes, err := os.ReadFile(c.BearerAuthTokenPath)
		if err != nil {
			return loki.Config{}, fmt.Errorf("failed to parse authorization path: %s %w", c.BearerAuthTokenPath, err)
		}
		authorization = "Bearer " + strings.TrimSpace(string(bytes))
	}

	cfg := loki.Config{
		TenantID:      c.TenantID,
		Authorization: authorization,
		BatchWait:     batchWait,
		BatchSize:     c.BatchSize,
		Timeout:       timeout,
		BackoffConfig: backoff.BackoffConfig{
			MinBackoff: minBackoff,
			MaxBackoff: maxBackoff,
			MaxRetries: c.MaxRetries,
		},
	}
	if c.ClientConfig != nil {
		cfg.Client = *c.ClientConfig
	}
	var clientURL urlutil.URLValue
	err = clientURL.Set(strings.TrimSuffix(c.URL, "/") + "/loki/api/v1/push")
	if err != nil {
		return cfg, fmt.Errorf("failed to parse client URL: %w", err)
	}
	cfg.URL = clientURL
	return cfg, nil
}

// ProcessCluster sends one line describing a terminal cluster
func (l *Loki) ProcessCluster(cluster encode.Cluster, timestamp time.Time) error {
	labels := model.LabelSet{}

	// Add static labels from config
	for k, v := range l.apiConfig.StaticLabels {
		lk, lv := model.LabelName(k), model.LabelValue(v)
		if !lk.IsValid() || !lv.IsValid() {
			log.WithFields(log.Fields{"key": k, "value": v}).Debug("Invalid static label. Ignoring it")
			continue
		}
		labels[lk] = lv
	}
	labels[subnetLabel] = model.LabelValue(cluster.Subnet)

	js, err := jsonIter.ConfigCompatibleWithStandardLibrary.Marshal(lokiLine{
		Subnet:    cluster.Subnet,
		Size:      len(cluster.Addresses),
		Addresses: cluster.Addresses,
	})
	if err != nil {
		return err
	}

	return l.client.Handle(labels, timestamp, string(js))
}

// Write sends every terminal cluster of the report, then flushes the pending batches
func (l *Loki) Write(report *encode.Report) error {
	log.Debugf("entering Loki Write")
	defer l.client.Stop()
	timestamp := l.clock.Now()
	for _, cluster := range report.Clusters {
		if err := l.ProcessCluster(cluster, timestamp); err != nil {
			return fmt.Errorf("write (Loki) error: %w", err)
		}
		recordsWritten.WithLabelValues(api.WriteTypeName("Loki")).Inc()
	}
	return nil
}

// NewWriteLoki creates a Loki writer from configuration
func NewWriteLoki(params *api.WriteLoki, clk clock.Clock) (*Loki, error) {
	log.Debugf("entering NewWriteLoki")

	// need to combine defaults with parameters that are provided in the config
	var jsonWriteLoki api.WriteLoki
	if params != nil {
		jsonWriteLoki = *params
	}
	jsonWriteLoki.SetDefaults()
	if err := jsonWriteLoki.Validate(); err != nil {
		return nil, fmt.Errorf("the provided config is not valid: %w", err)
	}

	lokiConfig, err := buildLokiConfig(&jsonWriteLoki)
	if err != nil {
		return nil, err
	}
	client, err := loki.NewWithLogger(lokiConfig, logAdapter.NewLogger(log.WithField("module", "export/loki")))
	if err != nil {
		return nil, err
	}

	return &Loki{
		lokiConfig: lokiConfig,
		apiConfig:  jsonWriteLoki,
		client:     client,
		clock:      clk,
	}, nil
}
