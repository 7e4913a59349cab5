// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"os"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/logger"
	"github.com/spf13/cobra"
)

var (
	// OperationPerformed reports whether a command started processing an export.
	OperationPerformed bool
	// OperationPerformedSuccessfully reports whether that processing completed.
	OperationPerformedSuccessfully bool
)

var (
	// ErrFieldPathRequired is returned by the field command without a path.
	ErrFieldPathRequired = errors.New("field path is required")
	// ErrUnknownFormat is returned for a --format other than table or json.
	ErrUnknownFormat = errors.New("unknown summary format")
)

// Execute runs the root command with os.Args, stopping early when ctx is
// cancelled. The returned error has already been printed by Cobra.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := NewRootCmd(version, log)
	rootCmd.SetArgs(os.Args[1:])
	return rootCmd.ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. log receives diagnostics; command
// results go to the command's output stream.
func NewRootCmd(version string, log logger.Logger) *cobra.Command {
	if log == nil {
		log = logger.NewCLILogger()
	}

	rootCmd := &cobra.Command{
		Use:   "txn-triple-extractor",
		Short: "Extract payment request IDs from a corrupted payment attempt export",
		Long: `txn-triple-extractor reads a CSV export of payment attempts whose response and
request cells hold JSON that may be masked or malformed, and recovers the
connector transaction id and attempt id of each payment.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newExtractCmd(log),
		newParseCmd(log),
		newSanitizeCmd(),
		newFieldCmd(),
	)
	return rootCmd
}
