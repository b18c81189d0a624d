/*
 * Copyright (C) 2022 IBM, Inc.
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
	"strings"
	"time"

	"github.com/netobserv/subnet-finder/pkg/api"
	kafkago "github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

const defaultReadTimeout = 5 * time.Second

type kafkaReadCloser interface {
	ReadMessage(ctx context.Context) (kafkago.Message, error)
	Config() kafkago.ReaderConfig
	Close() error
}

type ingestKafka struct {
	kafkaParams api.IngestKafka
	kafkaReader kafkaReadCloser
}

// Ingest reads one address per message until MaxMessages is reached, until no message
// arrives within ReadTimeout, or until ctx is cancelled.
func (k *ingestKafka) Ingest(ctx context.Context) ([]string, error) {
	defer func() {
		if err := k.kafkaReader.Close(); err != nil {
			log.WithError(err).Warn("can't close kafka reader")
		}
	}()
	var lines []string
	for k.kafkaParams.MaxMessages == 0 || len(lines) < k.kafkaParams.MaxMessages {
		readCtx, cancel := context.WithTimeout(ctx, k.kafkaParams.ReadTimeout.Duration)
		m, err := k.kafkaReader.ReadMessage(readCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				log.Infof("kafka ingest interrupted after %d messages", len(lines))
				break
			}
			if errors.Is(err, context.DeadlineExceeded) {
				log.Debugf("no message within %v: end of kafka ingest", k.kafkaParams.ReadTimeout.Duration)
				break
			}
			return nil, fmt.Errorf("kafka read error: %w", err)
		}
		log.Debugf("message at topic:%v partition:%v offset:%v	%s = %s", m.Topic, m.Partition, m.Offset, string(m.Key), string(m.Value))
		line := strings.TrimSpace(string(m.Value))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	log.Infof("Ingested %d addresses from kafka topic %s", len(lines), k.kafkaParams.Topic)
	recordsIngested.WithLabelValues(api.IngestTypeName("Kafka")).Add(float64(len(lines)))
	return lines, nil
}

// NewIngestKafka create a new ingester
func NewIngestKafka(params *api.IngestKafka) (Ingester, error) {
	log.Debugf("entering NewIngestKafka")
	if params == nil {
		return nil, errors.New("missing kafka ingest configuration")
	}
	jsonIngestKafka := *params
	if jsonIngestKafka.ReadTimeout.Duration <= 0 {
		jsonIngestKafka.ReadTimeout = api.Duration{Duration: defaultReadTimeout}
	}

	var startOffset int64
	switch jsonIngestKafka.StartOffset {
	case "", api.KafkaStartOffsetName("FirstOffset"):
		startOffset = kafkago.FirstOffset
	case api.KafkaStartOffsetName("LastOffset"):
		startOffset = kafkago.LastOffset
	default:
		return nil, fmt.Errorf("illegal value for StartOffset: %s", jsonIngestKafka.StartOffset)
	}

	dialer := &kafkago.Dialer{
		Timeout:   kafkago.DefaultDialer.Timeout,
		DualStack: kafkago.DefaultDialer.DualStack,
	}
	tlsConfig, err := jsonIngestKafka.TLS.AsClient()
	if err != nil {
		return nil, err
	}
	dialer.TLS = tlsConfig

	kafkaReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     jsonIngestKafka.Brokers,
		Topic:       jsonIngestKafka.Topic,
		GroupID:     jsonIngestKafka.GroupID,
		StartOffset: startOffset,
		Dialer:      dialer,
	})
	if kafkaReader == nil {
		errMsg := "NewIngestKafka: failed to create kafka reader"
		log.Errorf("%s", errMsg)
		return nil, errors.New(errMsg)
	}
	log.Debugf("kafkaReader = %v", kafkaReader)

	return &ingestKafka{
		kafkaParams: jsonIngestKafka,
		kafkaReader: kafkaReader,
	}, nil
}
