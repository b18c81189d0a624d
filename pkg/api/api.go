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

package api

const TagYaml = "yaml"
const TagDoc = "doc"
const TagEnum = "enum"

// Note: items beginning with doc: "## title" are top level items that get divided into sections inside api.md.

type API struct {
	Inference       Inference       `yaml:"inference" doc:"## Inference API\nFollowing is the supported API format for the subnet inference thresholds:\n"`
	IngestFile      IngestFile      `yaml:"file" doc:"## Ingest file API\nFollowing is the supported API format for reading addresses from a file or stdin:\n"`
	IngestKafka     IngestKafka     `yaml:"kafka" doc:"## Ingest Kafka API\nFollowing is the supported API format for the kafka ingest:\n"`
	IngestS3        IngestS3        `yaml:"s3" doc:"## Ingest S3 API\nFollowing is the supported API format for reading an address list object:\n"`
	IngestSynthetic IngestSynthetic `yaml:"synthetic" doc:"## Ingest synthetic API\nFollowing is the supported API format for generated addresses:\n"`
	Annotate        Annotate        `yaml:"annotate" doc:"## Annotate API\nFollowing is the supported API format for looking up the inferred subnet of records:\n"`
	WriteStdout     WriteStdout     `yaml:"stdout" doc:"## Write Standard Output\nFollowing is the supported API format for writing the report to standard output:\n"`
	WriteFile       WriteFile       `yaml:"file" doc:"## Write File\nFollowing is the supported API format for writing the report to a file:\n"`
	WriteS3         WriteS3         `yaml:"s3" doc:"## Write S3\nFollowing is the supported API format for storing the report in an object store:\n"`
	WriteLoki       WriteLoki       `yaml:"loki" doc:"## Write Loki\nFollowing is the supported API format for sending subnets to Loki:\n"`
}
