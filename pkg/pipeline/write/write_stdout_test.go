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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/netobserv/subnet-finder/pkg/api"
	"github.com/netobserv/subnet-finder/pkg/pipeline/encode"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func sampleReport() *encode.Report {
	return &encode.Report{
		Summary: encode.Summary{
			InputRecords:      5,
			DistinctAddresses: 4,
			SubnetsGrouped:    2,
			Branches:          1,
			Clusters:          2,
			GeneratedAt:       "2025-03-04T05:06:07Z",
		},
		Subnets: encode.Document{
			{Key: "10.0.0.0/30", Value: []string{"10.0.0.1", "10.0.0.2"}},
			{Key: "192.168.0.4/30", Value: []string{"192.168.0.5", "192.168.0.6"}},
		},
		Clusters: []encode.Cluster{
			{Subnet: "10.0.0.0/30", Addresses: []string{"10.0.0.1", "10.0.0.2"}},
			{Subnet: "192.168.0.4/30", Addresses: []string{"192.168.0.5", "192.168.0.6"}},
		},
	}
}

func Test_WriteStdout(t *testing.T) {
	ws, err := NewWriteStdout(nil)
	require.NoError(t, err)
	var out bytes.Buffer
	ws.(*writeStdout).out = &out

	require.NoError(t, ws.Write(sampleReport()))
	require.JSONEq(t, `{
		"10.0.0.0/30": ["10.0.0.1", "10.0.0.2"],
		"192.168.0.4/30": ["192.168.0.5", "192.168.0.6"]
	}`, out.String())
}

func Test_WriteStdoutYAML(t *testing.T) {
	ws, err := NewWriteStdout(&api.WriteStdout{Format: "yaml"})
	require.NoError(t, err)
	var out bytes.Buffer
	ws.(*writeStdout).out = &out

	require.NoError(t, ws.Write(sampleReport()))
	var back yaml.MapSlice
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &back))
	require.Len(t, back, 2)
	require.Equal(t, "10.0.0.0/30", back[0].Key)
}

func Test_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subnets.json")
	require.NoError(t, os.WriteFile(path, []byte("previous content that is longer than the new one and must go away entirely"), 0o600))
	wf, err := NewWriteFile(&api.WriteFile{Filename: path})
	require.NoError(t, err)

	require.NoError(t, wf.Write(sampleReport()))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"10.0.0.0/30": ["10.0.0.1", "10.0.0.2"],
		"192.168.0.4/30": ["192.168.0.5", "192.168.0.6"]
	}`, string(content))

	_, err = NewWriteFile(&api.WriteFile{})
	require.Error(t, err)
}

func Test_WriteFileBadDirectory(t *testing.T) {
	wf, err := NewWriteFile(&api.WriteFile{Filename: "/does/not/exist/subnets.json"})
	require.NoError(t, err)
	require.Error(t, wf.Write(sampleReport()))
}

func Test_NewWriter(t *testing.T) {
	clk := clock.NewMock()
	w, err := NewWriter(api.Write{Type: "stdout"}, clk)
	require.NoError(t, err)
	require.IsType(t, &writeStdout{}, w)

	w, err = NewWriter(api.Write{Type: "file", File: &api.WriteFile{Filename: "out.yaml", Format: "yaml"}}, clk)
	require.NoError(t, err)
	require.IsType(t, &writeFile{}, w)

	w, err = NewWriter(api.Write{Type: "loki", Loki: &api.WriteLoki{}}, clk)
	require.NoError(t, err)
	require.IsType(t, &Loki{}, w)

	_, err = NewWriter(api.Write{Type: "ipfix"}, clk)
	require.Error(t, err)
}

func Test_WriteFake(t *testing.T) {
	wf := NewWriteFake()
	report := sampleReport()
	require.NoError(t, wf.Write(report))
	require.Equal(t, []*encode.Report{report}, wf.Reports)

	wf.Err = errors.New("boom")
	require.Error(t, wf.Write(report))
	require.Len(t, wf.Reports, 1)
}

var testTime = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
