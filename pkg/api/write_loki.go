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

package api

import (
	"errors"

	promConfig "github.com/prometheus/common/config"
)

type WriteLoki struct {
	URL                 string                       `yaml:"url,omitempty" json:"url,omitempty" doc:"the address of an existing Loki service to push the subnets to"`
	TenantID            string                       `yaml:"tenantID,omitempty" json:"tenantID,omitempty" doc:"identifies the tenant for the request"`
	BatchWait           string                       `yaml:"batchWait,omitempty" json:"batchWait,omitempty" doc:"maximum amount of time to wait before sending a batch"`
	BatchSize           int                          `yaml:"batchSize,omitempty" json:"batchSize,omitempty" doc:"maximum batch size (in bytes) of logs to accumulate before sending"`
	Timeout             string                       `yaml:"timeout,omitempty" json:"timeout,omitempty" doc:"maximum time to wait for a server to respond to a request"`
	MinBackoff          string                       `yaml:"minBackoff,omitempty" json:"minBackoff,omitempty" doc:"initial backoff time for client connection between retries"`
	MaxBackoff          string                       `yaml:"maxBackoff,omitempty" json:"maxBackoff,omitempty" doc:"maximum backoff time for client connection between retries"`
	MaxRetries          int                          `yaml:"maxRetries,omitempty" json:"maxRetries,omitempty" doc:"maximum number of retries for client connections"`
	StaticLabels        map[string]string            `yaml:"staticLabels,omitempty" json:"staticLabels,omitempty" doc:"map of common labels to set on each line"`
	ClientConfig        *promConfig.HTTPClientConfig `yaml:"clientConfig,omitempty" json:"clientConfig,omitempty" doc:"clientConfig"`
	BearerAuthTokenPath string                       `yaml:"bearerAuthTokenPath,omitempty" json:"bearerAuthTokenPath,omitempty" doc:"path to a file holding a bearer token"`
}

func GetWriteLokiDefaults() WriteLoki {
	return WriteLoki{
		URL:        "http://loki:3100/",
		BatchWait:  "1s",
		BatchSize:  100 * 1024,
		Timeout:    "10s",
		MinBackoff: "1s",
		MaxBackoff: "5m",
		MaxRetries: 10,
	}
}

func (w *WriteLoki) Validate() error {
	if w == nil {
		return errors.New("you must provide a configuration")
	}
	if w.Timeout == "" {
		return errors.New("timeout can't be empty")
	}
	if w.URL == "" {
		return errors.New("url can't be empty")
	}
	if w.BatchSize <= 0 {
		return errors.New("invalid batchSize: must be a positive number")
	}
	return nil
}

// SetDefaults fills the unset fields with GetWriteLokiDefaults values.
func (w *WriteLoki) SetDefaults() {
	d := GetWriteLokiDefaults()
	if w.URL == "" {
		w.URL = d.URL
	}
	if w.BatchWait == "" {
		w.BatchWait = d.BatchWait
	}
	if w.BatchSize == 0 {
		w.BatchSize = d.BatchSize
	}
	if w.Timeout == "" {
		w.Timeout = d.Timeout
	}
	if w.MinBackoff == "" {
		w.MinBackoff = d.MinBackoff
	}
	if w.MaxBackoff == "" {
		w.MaxBackoff = d.MaxBackoff
	}
	if w.MaxRetries == 0 {
		w.MaxRetries = d.MaxRetries
	}
}
