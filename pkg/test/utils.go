/*
 * Copyright (C) 2021 IBM, Inc.
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

package test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/netobserv/subnet-finder/pkg/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// InitConfig reads a YAML configuration the way the command line does: structured sections
// are re-marshalled to JSON and parsed with the inference flag defaults.
func InitConfig(t *testing.T, conf string) (*viper.Viper, config.Config) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewReader([]byte(conf))))

	section := func(key string) string {
		if !v.IsSet(key) {
			return ""
		}
		val := v.Get(key)
		b, err := json.Marshal(&val)
		require.NoError(t, err)
		return string(b)
	}
	orDefault := func(key string, def int) int {
		if v.IsSet(key) {
			return v.GetInt(key)
		}
		return def
	}
	applyMerges := true
	if v.IsSet("inference.applyMerges") {
		applyMerges = v.GetBool("inference.applyMerges")
	}

	opts := config.Options{
		Input:    v.GetString("input"),
		Format:   v.GetString("format"),
		Ingest:   section("ingest"),
		Write:    section("write"),
		Annotate: section("annotate"),
		Inference: config.InferenceOptions{
			MinHostBits:       orDefault("inference.minHostBits", 2),
			MaxHostBits:       orDefault("inference.maxHostBits", 16),
			TopMergeCount:     orDefault("inference.topMergeCount", 8),
			OverlapSizeCutoff: orDefault("inference.overlapSizeCutoff", 128),
			ApplyMerges:       applyMerges,
		},
	}
	cfg, err := config.ParseConfig(&opts)
	require.NoError(t, err)
	return v, cfg
}

// DumpToTemp writes content to a new temporary file and returns its path with a cleanup function.
func DumpToTemp(content string) (string, func(), error) {
	file, err := os.CreateTemp("", "subnet-finder-test-")
	if err != nil {
		return "", nil, err
	}
	defer file.Close()
	if _, err := file.WriteString(content); err != nil {
		return "", nil, err
	}
	name := file.Name()
	return name, func() { _ = os.Remove(name) }, nil
}

// WriteLines creates a file holding one line per entry in the test temporary directory.
func WriteLines(t *testing.T, name string, lines ...string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func DeserializeJSONToMap(t *testing.T, in string) config.GenericMap {
	var m config.GenericMap
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(in), &m))
	return m
}
