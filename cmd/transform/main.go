/*
 * Copyright 2025 Carver Automation Corporation.
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
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/carverauto/radarexport/pkg/config"
	"github.com/carverauto/radarexport/pkg/export"
	"github.com/carverauto/radarexport/pkg/lifecycle"
	"github.com/carverauto/radarexport/pkg/logger"
)

var (
	errFailedToLoadConfig = errors.New("failed to load export configuration")
	errFailedToInitLogger = errors.New("failed to initialize logger")
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		export.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configFile string
	inputPath  string
	outputPath string
	debug      bool
	set        map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("transform", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{set: make(map[string]bool)}

	fs.StringVar(&opts.configFile, "config", "", "Optional JSON config file")
	fs.StringVar(&opts.inputPath, "input", export.DefaultInputPath, "Path to the raw scan document")
	fs.StringVar(&opts.outputPath, "output", export.DefaultOutputPath, "Path to write the dashboard export")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	return opts, nil
}

// buildConfig layers defaults, the optional config file and explicit flags.
// Validation happens once, in export.NewTransformer.
func buildConfig(ctx context.Context, opts *options) (*export.Config, error) {
	cfg := export.DefaultConfig()

	if opts.configFile != "" {
		if err := config.NewConfig(nil).Load(ctx, opts.configFile, cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
		}
	}

	if opts.set["input"] {
		cfg.InputPath = opts.inputPath
	}

	if opts.set["output"] {
		cfg.OutputPath = opts.outputPath
	}

	if cfg.Logging == nil {
		cfg.Logging = logger.DefaultConfig()
	}

	if opts.debug {
		cfg.Logging.Debug = true
	}

	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := buildConfig(context.Background(), opts)
	if err != nil {
		return err
	}

	if err := lifecycle.InitializeLogger(cfg.Logging); err != nil {
		return err
	}

	log, err := lifecycle.CreateComponentLogger("transform", cfg.Logging)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToInitLogger, err)
	}

	transformer, err := export.NewTransformer(cfg, log, nil)
	if err != nil {
		return err
	}

	result, err := transformer.Run()
	if err != nil {
		return err
	}

	return export.PrintSummary(stdout, result)
}
