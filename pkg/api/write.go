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

type Write struct {
	Type   string       `yaml:"type" json:"type" enum:"WriteTypeEnum" doc:"one of the following:"`
	Stdout *WriteStdout `yaml:"stdout,omitempty" json:"stdout,omitempty" doc:"standard output"`
	File   *WriteFile   `yaml:"file,omitempty" json:"file,omitempty" doc:"local file"`
	S3     *WriteS3     `yaml:"s3,omitempty" json:"s3,omitempty" doc:"object store"`
	Loki   *WriteLoki   `yaml:"loki,omitempty" json:"loki,omitempty" doc:"Loki push API"`
}

type WriteTypeEnum struct {
	Stdout string `yaml:"stdout" json:"stdout" doc:"print the subnet document to standard output"`
	File   string `yaml:"file" json:"file" doc:"write the subnet document to a file"`
	S3     string `yaml:"s3" json:"s3" doc:"store the report as an object"`
	Loki   string `yaml:"loki" json:"loki" doc:"send one log line per subnet to Loki"`
}

func WriteTypeName(operation string) string {
	return GetEnumName(WriteTypeEnum{}, operation)
}

type FormatEnum struct {
	JSON string `yaml:"json" json:"json" doc:"indented JSON"`
	YAML string `yaml:"yaml" json:"yaml" doc:"YAML"`
}

func FormatName(operation string) string {
	return GetEnumName(FormatEnum{}, operation)
}

type WriteStdout struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty" enum:"FormatEnum" doc:"the format of the document (default: json):"`
}

type WriteFile struct {
	Filename string `yaml:"filename" json:"filename" doc:"path of the output file, truncated if it exists"`
	Format   string `yaml:"format,omitempty" json:"format,omitempty" enum:"FormatEnum" doc:"the format of the document (default: json):"`
}

type WriteS3 struct {
	Account                string                 `yaml:"account" json:"account" doc:"tenant id, first element of the object name"`
	Endpoint               string                 `yaml:"endpoint" json:"endpoint" doc:"address of s3 server"`
	AccessKeyID            string                 `yaml:"accessKeyId" json:"accessKeyId" doc:"username to connect to server"`
	SecretAccessKey        string                 `yaml:"secretAccessKey" json:"secretAccessKey" doc:"password to connect to server"`
	Bucket                 string                 `yaml:"bucket" json:"bucket" doc:"bucket into which to store objects"`
	Secure                 bool                   `yaml:"secure,omitempty" json:"secure,omitempty" doc:"use https to connect to server"`
	StreamID               string                 `yaml:"streamId,omitempty" json:"streamId,omitempty" doc:"stream-id element of the object name (default: start time of the run)"`
	ObjectHeaderParameters map[string]interface{} `yaml:"objectHeaderParameters,omitempty" json:"objectHeaderParameters,omitempty" doc:"parameters to include in object header (key/value pairs)"`
}
