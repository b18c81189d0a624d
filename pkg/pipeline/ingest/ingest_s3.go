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

package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/netobserv/subnet-finder/pkg/api"
	"github.com/netobserv/subnet-finder/pkg/subnet"
	log "github.com/sirupsen/logrus"
)

type s3Reader interface {
	getObject(ctx context.Context, bucket, object string) (io.ReadCloser, error)
}

type minioReader struct {
	client *minio.Client
}

func (m *minioReader) getObject(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	return m.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
}

type ingestS3 struct {
	s3Params api.IngestS3
	s3Reader s3Reader
}

// Ingest reads one address per line from the configured object
func (s *ingestS3) Ingest(ctx context.Context) ([]string, error) {
	obj, err := s.s3Reader.getObject(ctx, s.s3Params.Bucket, s.s3Params.Object)
	if err != nil {
		return nil, fmt.Errorf("can't get object %s/%s: %w", s.s3Params.Bucket, s.s3Params.Object, err)
	}
	defer func() {
		_ = obj.Close()
	}()
	lines, err := readLines(ctx, obj)
	if err != nil {
		return nil, fmt.Errorf("can't read object %s/%s: %w", s.s3Params.Bucket, s.s3Params.Object, err)
	}
	records := subnet.CountRecords(lines)
	log.Infof("Ingested %d addresses from object %s/%s", records, s.s3Params.Bucket, s.s3Params.Object)
	recordsIngested.WithLabelValues(api.IngestTypeName("S3")).Add(float64(records))
	return lines, nil
}

// NewIngestS3 create a new ingester reading from an object store
func NewIngestS3(params *api.IngestS3) (Ingester, error) {
	log.Debugf("entering NewIngestS3")
	if params == nil {
		return nil, errors.New("missing s3 ingest configuration")
	}
	client, err := minio.New(params.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(params.AccessKeyID, params.SecretAccessKey, ""),
		Secure: params.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("error when creating S3 client: %w", err)
	}
	log.Debugf("s3Client = %#v", client)
	return &ingestS3{
		s3Params: *params,
		s3Reader: &minioReader{client: client},
	}, nil
}
