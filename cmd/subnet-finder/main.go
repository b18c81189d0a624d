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
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/netobserv/subnet-finder/pkg/config"
	"github.com/netobserv/subnet-finder/pkg/pipeline"
	"github.com/netobserv/subnet-finder/pkg/pipeline/utils"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	buildVersion       = "unknown"
	buildDate          = "unknown"
	cfgFile            string
	logLevel           string
	envPrefix          = "SUBNET_FINDER"
	defaultLogFileName = ".subnet-finder"
	opts               config.Options
)

// rootCmd represents the root command
var rootCmd = &cobra.Command{
	Use:   "subnet-finder",
	Short: "Infer the subnets of a list of IPv4 addresses",
	Long: `subnet-finder reads a list of IPv4 addresses and infers how they cluster into subnets.
The result is a document where each CIDR maps either to nested subnets or to its addresses.`,
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return run()
	},
}

// initConfig use config file and ENV variables if set.
func initConfig() {
	v := viper.New()

	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal(err)
		}
		// Search config in home directory with name ".subnet-finder" (without extension).
		v.AddConfigPath(home)
		v.SetConfigName(defaultLogFileName)
	}

	// Read environment variables that match prefix
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// If a config file is found, read it in.
	cfgErr := v.ReadInConfig()

	bindFlags(rootCmd, v)

	// initialize logger
	initLogger()

	if cfgErr != nil {
		if _, notFound := cfgErr.(viper.ConfigFileNotFoundError); notFound && cfgFile == "" {
			log.Debugf("no config file: %v", cfgErr)
		} else {
			log.Errorf("Read config error: %v", cfgErr)
		}
	}
}

func initLogger() {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.ErrorLevel
	}
	log.SetLevel(ll)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableColors: false, FullTimestamp: true, PadLevelText: true, DisableQuote: true})
}

func dumpConfig(opts *config.Options) {
	configAsJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(opts, "", "    ")
	if err != nil {
		panic(fmt.Sprintf("error dumping config: %v", err))
	}
	log.Debugf("Using configuration:\n%s", configAsJSON)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if strings.Contains(f.Name, ".") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, ".", "_"))
			_ = v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix))
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			switch val.(type) {
			case bool, uint, string, int32, int16, int8, int, uint32, uint64, int64, float64, float32, []string, []int:
				_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			default:
				var jsonNew = jsoniter.ConfigCompatibleWithStandardLibrary
				b, err := jsonNew.Marshal(&val)
				if err != nil {
					log.Fatalf("can't parse flag %s into json with value %v got error %s", f.Name, val, err)
					return
				}
				_ = cmd.Flags().Set(f.Name, string(b))
			}
		}
	})
}

func initFlags() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $HOME/%s)", defaultLogFileName))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warning, error")
	rootCmd.PersistentFlags().StringVar(&opts.Input, "input", "", "address list, one address per line; - reads from stdin (default: -)")
	rootCmd.PersistentFlags().StringVar(&opts.Format, "format", "", "format of the document printed to stdout: json or yaml (default: json)")
	rootCmd.PersistentFlags().StringVar(&opts.Ingest, "ingest", "", "json of config file ingest field")
	rootCmd.PersistentFlags().StringVar(&opts.Write, "write", "", "json of config file write field (list of writers)")
	rootCmd.PersistentFlags().StringVar(&opts.Annotate, "annotate", "", "json of config file annotate field")
	rootCmd.PersistentFlags().IntVar(&opts.Inference.MinHostBits, "inference.minHostBits", 2, "host bits of the finest subnet considered when grouping")
	rootCmd.PersistentFlags().IntVar(&opts.Inference.MaxHostBits, "inference.maxHostBits", 16, "host bits of the coarsest merge level")
	rootCmd.PersistentFlags().IntVar(&opts.Inference.TopMergeCount, "inference.topMergeCount", 8, "number of highest scoring branches flattened into a single group")
	rootCmd.PersistentFlags().IntVar(&opts.Inference.OverlapSizeCutoff, "inference.overlapSizeCutoff", 128, "branch size above which scores are combined from the children")
	rootCmd.PersistentFlags().BoolVar(&opts.Inference.ApplyMerges, "inference.applyMerges", true, "emit the tree with the selected merges applied")
	rootCmd.PersistentFlags().StringVar(&opts.Metrics.Address, "metrics.address", "", "address of the /metrics endpoint (default: 0.0.0.0)")
	rootCmd.PersistentFlags().IntVar(&opts.Metrics.Port, "metrics.port", 0, "port of the /metrics endpoint (default: disabled)")
	rootCmd.PersistentFlags().StringVar(&opts.Metrics.TLS, "metrics.tls", "", "json of the /metrics endpoint TLS configuration")
}

func main() {
	// Initialize flags (command line parameters)
	initFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initial log message
	log.Infof("Starting %s: build version: %s, build date: %s", filepath.Base(os.Args[0]), buildVersion, buildDate)

	// Dump configuration
	dumpConfig(&opts)

	cfg, err := config.ParseConfig(&opts)
	if err != nil {
		log.Errorf("error in parsing config: %v", err)
		return err
	}

	// Setup (threads) exit manager
	utils.SetupElegantExit()
	ctx, cancel := utils.ExitContext(context.Background())
	defer cancel()

	if cfg.Metrics.Port != 0 {
		promServer := &http.Server{}
		go utils.StartPromServer(&cfg.Metrics, promServer)
		defer func() {
			_ = promServer.Shutdown(context.Background())
		}()
	}

	mainPipeline, err := pipeline.NewPipeline(&cfg)
	if err != nil {
		log.Errorf("failed to initialize pipeline: %s", err)
		return err
	}

	if _, err := mainPipeline.Run(ctx); err != nil {
		log.Errorf("run failed: %v", err)
		return err
	}
	log.Debugf("exiting main run")
	return nil
}
