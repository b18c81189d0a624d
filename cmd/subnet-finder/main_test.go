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

package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/netobserv/subnet-finder/pkg/config"
	"github.com/netobserv/subnet-finder/pkg/test"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestTheMain(t *testing.T) {
	if os.Getenv("BE_CRASHER") == "1" {
		main()
		return
	}
	cmd := exec.Command(os.Args[0], "-test.run=TestTheMain")
	cmd.Env = append(os.Environ(), "BE_CRASHER=1")
	err := cmd.Run()
	var castErr *exec.ExitError
	if errors.As(err, &castErr) && !castErr.Success() {
		return
	}
	t.Fatalf("process ran with err %v, want exit status 1", err)
}

func TestRun(t *testing.T) {
	output := filepath.Join(t.TempDir(), "subnets.json")
	opts = config.Options{
		Input: test.WriteLines(t, "addresses.txt", "10.0.0.1", "10.0.0.2"),
		Write: `[{"type":"file","file":{"filename":"` + output + `"}}]`,
		Inference: config.InferenceOptions{
			MinHostBits:       2,
			MaxHostBits:       16,
			TopMergeCount:     8,
			OverlapSizeCutoff: 128,
			ApplyMerges:       true,
		},
	}
	require.NoError(t, run())

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	require.JSONEq(t, `{"10.0.0.0/30":["10.0.0.1","10.0.0.2"]}`, string(content))
}

func TestRunMalformedInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "subnets.json")
	opts = config.Options{
		Input:     test.WriteLines(t, "addresses.txt", "10.0.0.1", "10.0.0.256"),
		Write:     `[{"type":"file","file":{"filename":"` + output + `"}}]`,
		Inference: config.InferenceOptions{MinHostBits: 2, MaxHostBits: 16, TopMergeCount: 8, OverlapSizeCutoff: 128},
	}
	require.ErrorContains(t, run(), "record 2")
	_, err := os.Stat(output)
	require.True(t, os.IsNotExist(err), "no output expected on malformed input")
}

func TestRunInvalidConfig(t *testing.T) {
	opts = config.Options{
		Input:     "-",
		Inference: config.InferenceOptions{MinHostBits: 8, MaxHostBits: 4},
	}
	require.Error(t, run())
}

func TestBindFlags(t *testing.T) {
	var o config.Options
	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&o.Write, "write", "", "")
	cmd.Flags().IntVar(&o.Inference.MaxHostBits, "inference.maxHostBits", 16, "")
	cmd.Flags().StringVar(&o.Format, "format", "", "")
	require.NoError(t, cmd.Flags().Set("format", "json"))

	v := viper.New()
	v.Set("write", []interface{}{map[string]interface{}{"type": "stdout"}})
	v.Set("inference.maxHostBits", 20)
	v.Set("format", "yaml")
	bindFlags(cmd, v)

	require.JSONEq(t, `[{"type":"stdout"}]`, o.Write)
	require.Equal(t, 20, o.Inference.MaxHostBits)
	// flags set on the command line win over the configuration
	require.Equal(t, "json", o.Format)
}
