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

type Annotate struct {
	Filename       string `yaml:"filename" json:"filename" doc:"JSON-lines file of records to annotate; - reads from stdin"`
	Input          string `yaml:"input" json:"input" doc:"record field holding the IPv4 address"`
	Output         string `yaml:"output" json:"output" doc:"record field receiving the longest matching inferred subnet"`
	OutputFilename string `yaml:"outputFilename,omitempty" json:"outputFilename,omitempty" doc:"destination of the annotated records (default: -, stdout)"`
}

type MetricsSettings struct {
	Address string     `yaml:"address,omitempty" json:"address,omitempty" doc:"address to expose \"/metrics\" on (default: 0.0.0.0)"`
	Port    int        `yaml:"port,omitempty" json:"port,omitempty" doc:"port number to expose \"/metrics\" on (default: 0, disabled)"`
	TLS     *ServerTLS `yaml:"tls,omitempty" json:"tls,omitempty" doc:"TLS configuration for the endpoint"`
	NoPanic bool       `yaml:"noPanic,omitempty" json:"noPanic,omitempty" doc:"keep running when the endpoint can't be served"`
}
