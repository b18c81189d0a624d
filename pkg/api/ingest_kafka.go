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

type IngestKafka struct {
	Brokers     []string   `yaml:"brokers" json:"brokers" doc:"list of kafka broker addresses"`
	Topic       string     `yaml:"topic" json:"topic" doc:"kafka topic to listen on"`
	GroupID     string     `yaml:"groupId,omitempty" json:"groupId,omitempty" doc:"separate groupID for each consumer on specified topic"`
	StartOffset string     `yaml:"startOffset,omitempty" json:"startOffset,omitempty" enum:"KafkaStartOffsetEnum" doc:"where to start reading when the group has no committed offset:"`
	MaxMessages int        `yaml:"maxMessages,omitempty" json:"maxMessages,omitempty" doc:"stop after this many messages (default: 0, no limit)"`
	ReadTimeout Duration   `yaml:"readTimeout,omitempty" json:"readTimeout,omitempty" doc:"stop when no message arrives within this idle time (default: 5s)"`
	TLS         *TLSConfig `yaml:"tls,omitempty" json:"tls,omitempty" doc:"TLS client configuration (optional)"`
}

type KafkaStartOffsetEnum struct {
	FirstOffset string `yaml:"FirstOffset" json:"FirstOffset" doc:"start from the oldest message of the topic"`
	LastOffset  string `yaml:"LastOffset" json:"LastOffset" doc:"start from the newest message of the topic"`
}

func KafkaStartOffsetName(operation string) string {
	return GetEnumName(KafkaStartOffsetEnum{}, operation)
}
