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

type Ingest struct {
	Type      string           `yaml:"type" json:"type" enum:"IngestTypeEnum" doc:"one of the following:"`
	File      *IngestFile      `yaml:"file,omitempty" json:"file,omitempty" doc:"file or stdin source"`
	Kafka     *IngestKafka     `yaml:"kafka,omitempty" json:"kafka,omitempty" doc:"kafka topic source"`
	S3        *IngestS3        `yaml:"s3,omitempty" json:"s3,omitempty" doc:"object store source"`
	Synthetic *IngestSynthetic `yaml:"synthetic,omitempty" json:"synthetic,omitempty" doc:"generated addresses"`
}

type IngestTypeEnum struct {
	File      string `yaml:"file" json:"file" doc:"read one address per line from a file, - for stdin"`
	Kafka     string `yaml:"kafka" json:"kafka" doc:"read one address per message from a kafka topic"`
	S3        string `yaml:"s3" json:"s3" doc:"read an address list object from an S3 bucket"`
	Synthetic string `yaml:"synthetic" json:"synthetic" doc:"generate addresses inside configured CIDRs"`
}

func IngestTypeName(operation string) string {
	return GetEnumName(IngestTypeEnum{}, operation)
}

type IngestFile struct {
	Filename string `yaml:"filename" json:"filename" doc:"path of the address list, one address per line; - reads from stdin"`
}

type IngestS3 struct {
	Endpoint        string `yaml:"endpoint" json:"endpoint" doc:"address of s3 server"`
	AccessKeyID     string `yaml:"accessKeyId" json:"accessKeyId" doc:"username to connect to server"`
	SecretAccessKey string `yaml:"secretAccessKey" json:"secretAccessKey" doc:"password to connect to server"`
	Bucket          string `yaml:"bucket" json:"bucket" doc:"bucket holding the object"`
	Object          string `yaml:"object" json:"object" doc:"name of the address list object"`
	Secure          bool   `yaml:"secure,omitempty" json:"secure,omitempty" doc:"use https to connect to server"`
}

type IngestSynthetic struct {
	CIDRs []string `yaml:"cidrs" json:"cidrs" doc:"networks to generate host addresses in"`
	Count int      `yaml:"count,omitempty" json:"count,omitempty" doc:"number of distinct addresses per network (default: 100)"`
	Seed  int64    `yaml:"seed,omitempty" json:"seed,omitempty" doc:"random generator seed (default: 1)"`
}
