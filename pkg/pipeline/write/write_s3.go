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

package write

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	jsoniter "github.com/json-iterator/go"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/mitchellh/mapstructure"
	"github.com/netobserv/subnet-finder/pkg/api"
	"github.com/netobserv/subnet-finder/pkg/pipeline/encode"
	log "github.com/sirupsen/logrus"
)

const s3Version = "1.0"

type s3Writer interface {
	putObject(bucket string, objectName string, object map[string]interface{}) error
}

type writeS3 struct {
	s3Params       api.WriteS3
	s3Writer       s3Writer
	clock          clock.Clock
	streamID       string
	sequenceNumber int64
}

type minioWriter struct {
	s3Client *minio.Client
}

// Write stores the report as one object
func (s *writeS3) Write(report *encode.Report) error {
	object, err := s.GenerateStoreHeader(report)
	if err != nil {
		return err
	}
	objectName := s.objectName(s.clock.Now())
	log.Debugf("S3 writeObject: objectName = %s", objectName)
	if err := s.s3Writer.putObject(s.s3Params.Bucket, objectName, object); err != nil {
		return fmt.Errorf("error writing to object store: %w", err)
	}
	s.sequenceNumber++
	recordsWritten.WithLabelValues(api.WriteTypeName("S3")).Add(float64(len(report.Clusters)))
	return nil
}

func (s *writeS3) objectName(now time.Time) string {
	now = now.UTC()
	year := fmt.Sprintf("%04d", now.Year())
	month := fmt.Sprintf("%02d", now.Month())
	day := fmt.Sprintf("%02d", now.Day())
	hour := fmt.Sprintf("%02d", now.Hour())
	seq := fmt.Sprintf("%08d", s.sequenceNumber)
	return s.s3Params.Account + "/year=" + year + "/month=" + month + "/day=" + day + "/hour=" + hour + "/stream-id=" + s.streamID + "/" + seq
}

// GenerateStoreHeader builds the stored object: user header parameters, the run summary and
// the subnet document.
func (s *writeS3) GenerateStoreHeader(report *encode.Report) (map[string]interface{}, error) {
	augmentedObject := make(map[string]interface{})
	// copy user defined keys from config to object header
	for key, value := range s.s3Params.ObjectHeaderParameters {
		augmentedObject[key] = value
	}
	summary := map[string]interface{}{}
	if err := mapstructure.Decode(report.Summary, &summary); err != nil {
		return nil, fmt.Errorf("can't convert summary: %w", err)
	}
	for key, value := range summary {
		augmentedObject[key] = value
	}
	augmentedObject["version"] = s3Version
	augmentedObject["state"] = "ok"
	augmentedObject["subnets"] = report.Subnets

	return augmentedObject, nil
}

func (m *minioWriter) putObject(bucket string, objectName string, object map[string]interface{}) error {
	b := new(bytes.Buffer)
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(b).Encode(object); err != nil {
		return fmt.Errorf("error encoding object: %w", err)
	}
	log.Debugf("encoded object = %v", b)
	uploadInfo, err := m.s3Client.PutObject(context.Background(), bucket, objectName, b, int64(b.Len()), minio.PutObjectOptions{ContentType: "application/json"})
	log.Debugf("uploadInfo = %v", uploadInfo)
	return err
}

// NewWriteS3 create a new writer to S3
func NewWriteS3(params *api.WriteS3, clk clock.Clock) (Writer, error) {
	if params == nil {
		return nil, errors.New("missing s3 write configuration")
	}
	configParams := *params
	log.Debugf("NewWriteS3, config = %v", configParams.Bucket)
	s3Client, err := minio.New(configParams.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(configParams.AccessKeyID, configParams.SecretAccessKey, ""),
		Secure: configParams.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("error when creating S3 client: %w", err)
	}
	log.Infof("s3Client = %#v", s3Client)

	streamID := configParams.StreamID
	if streamID == "" {
		streamID = clk.Now().UTC().Format(time.RFC3339)
	}
	return &writeS3{
		s3Params: configParams,
		s3Writer: &minioWriter{s3Client: s3Client},
		clock:    clk,
		streamID: streamID,
	}, nil
}
