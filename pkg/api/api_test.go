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
	"testing"

	"github.com/netobserv/subnet-finder/pkg/subnet"
	"github.com/stretchr/testify/require"
)

func TestInference_Defaults(t *testing.T) {
	inf := Inference{}
	require.Equal(t, subnet.DefaultConfig(), inf.SubnetConfig())
	require.NoError(t, inf.Validate())
	// conversion does not modify the receiver
	require.Nil(t, inf.TopMergeCount)
	require.Nil(t, inf.OverlapSizeCutoff)

	zero := 0
	no := false
	ten := 10
	inf = Inference{MinHostBits: 4, MaxHostBits: 12, TopMergeCount: &zero, OverlapSizeCutoff: &ten, ApplyMerges: &no}
	require.Equal(t, subnet.Config{MinHostBits: 4, MaxHostBits: 12, TopMergeCount: 0, OverlapSizeCutoff: 10, ApplyMerges: false}, inf.SubnetConfig())

	// a zero cutoff always combines the children summaries and is kept as is
	inf = Inference{OverlapSizeCutoff: &zero}
	require.NoError(t, inf.Validate())
	require.Zero(t, inf.SubnetConfig().OverlapSizeCutoff)
}

func TestInference_Validate(t *testing.T) {
	negative := -1
	for _, inf := range []Inference{
		{MinHostBits: 20, MaxHostBits: 10},
		{MaxHostBits: 40},
		{TopMergeCount: &negative},
		{OverlapSizeCutoff: &negative},
	} {
		require.Error(t, inf.Validate(), "%+v", inf)
	}
}

func TestEnumNames(t *testing.T) {
	require.Equal(t, "kafka", IngestTypeName("Kafka"))
	require.Equal(t, "synthetic", IngestTypeName("Synthetic"))
	require.Equal(t, "loki", WriteTypeName("Loki"))
	require.Equal(t, "yaml", FormatName("YAML"))
	require.Equal(t, "FirstOffset", KafkaStartOffsetName("FirstOffset"))
	require.Equal(t, "mutual", TLSTypeName("Mutual"))
	require.Equal(t, "WriteTypeEnum", GetEnumReflectionTypeByFieldName("WriteTypeEnum").Name())
}

func TestWriteLoki_Validate(t *testing.T) {
	w := GetWriteLokiDefaults()
	require.NoError(t, w.Validate())
	w.URL = ""
	require.Error(t, w.Validate())
	w = GetWriteLokiDefaults()
	w.BatchSize = 0
	require.Error(t, w.Validate())
	var nilLoki *WriteLoki
	require.Error(t, nilLoki.Validate())
}

func TestWriteLoki_SetDefaults(t *testing.T) {
	w := WriteLoki{URL: "https://loki.example:3100", BatchSize: 10}
	w.SetDefaults()
	require.Equal(t, "https://loki.example:3100", w.URL)
	require.Equal(t, 10, w.BatchSize)
	require.Equal(t, "1s", w.BatchWait)
	require.Equal(t, "10s", w.Timeout)
	require.Equal(t, 10, w.MaxRetries)
	require.NoError(t, w.Validate())
}
