// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/config"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/extract"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/pipeline"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/logger"
	"github.com/spf13/cobra"
)

// runFlags are the flags shared by the extract and parse commands.
type runFlags struct {
	configFile   string
	input        string
	output       string
	format       string
	strictQuotes bool
}

func (f *runFlags) register(cmd *cobra.Command, outputHelp string) {
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "JSON or YAML config file (default: $"+config.EnvConfigFile+")")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "CSV export to read (default: payments.csv next to the executable)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", outputHelp)
	cmd.Flags().StringVar(&f.format, "format", "", "summary format: table or json")
	cmd.Flags().BoolVar(&f.strictQuotes, "strict-quotes", false, "treat bare quotes in CSV cells as row errors")
}

// load reads the configuration and applies the flags that were set.
func (f *runFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return nil, err
	}
	if f.input != "" {
		cfg.Input = f.input
	}
	if cmd.Flags().Changed("format") {
		cfg.SummaryFormat = f.format
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f.format)
		}
	}
	if f.strictQuotes {
		cfg.LazyQuotes = false
	}
	return cfg, nil
}

func newExtractCmd(log logger.Logger) *cobra.Command {
	var (
		flags runFlags
		flows string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Write de-duplicated request ID triples for the Authorize and SetupMandate flows",
		Long: `extract keeps the rows whose flow is Authorize or SetupMandate (or the flows
given with --flows) and whose response is not empty, pulls the connector
transaction id from the response and the attempt id from the request, and
writes each distinct (payment_id, connector_transaction_id, attempt_id) once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if flags.output != "" {
				cfg.Output = flags.output
			}
			if cmd.Flags().Changed("flows") {
				cfg.Flows = config.SplitFlows(flows)
			}

			job := pipeline.TripleJob(extract.New(nil), cfg.Flows)
			return runJob(cmd, log, cfg, job, cfg.Output)
		},
	}

	flags.register(cmd, "destination CSV (default: request_ids.csv next to the executable)")
	cmd.Flags().StringVar(&flows, "flows", "", "comma separated flows to keep (default: Authorize,SetupMandate)")
	return cmd
}

func newParseCmd(log logger.Logger) *cobra.Command {
	var (
		flags runFlags
		dedup bool
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "List every row with its flow, ids and capture flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			output := cfg.ParseOutput
			if flags.output != "" {
				output = flags.output
			}

			job := pipeline.FlowJob(extract.New(nil), dedup)
			return runJob(cmd, log, cfg, job, output)
		},
	}

	flags.register(cmd, "destination CSV (default: parsed_payments.csv next to the executable)")
	cmd.Flags().BoolVar(&dedup, "dedup", false, "drop rows repeating an already written triple")
	return cmd
}

// runJob runs job from cfg.Input into output and prints the summary.
func runJob(cmd *cobra.Command, log logger.Logger, cfg *config.Config, job pipeline.Job, output string) error {
	if cfg.Log.Path != "" {
		f, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		defer func() {
			log.SetOutput(os.Stderr)
			f.Close()
		}()
	}

	OperationPerformed = true
	log.Printf("Reading %s", cfg.Input)

	sum, err := pipeline.RunFiles(cmd.Context(), job, cfg.Input, output, pipeline.Options{
		Logger:     log,
		LazyQuotes: cfg.LazyQuotes,
	})
	if err != nil {
		return err
	}

	log.Printf("Wrote %d records to %s", sum.Written, output)
	if err := printSummary(cmd.OutOrStdout(), sum, cfg.SummaryFormat); err != nil {
		return err
	}

	OperationPerformedSuccessfully = true
	return nil
}

func printSummary(w io.Writer, sum pipeline.Summary, format string) error {
	switch format {
	case config.FormatJSON:
		data, err := sum.ToJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		_, err := fmt.Fprint(w, sum.RenderTable(false))
		return err
	}
}
