// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/extract"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/sanitize"
	"github.com/spf13/cobra"
)

// readText returns args[0] when present, otherwise everything on the
// command's input stream.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read standard input: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func newSanitizeCmd() *cobra.Command {
	var report bool

	cmd := &cobra.Command{
		Use:   "sanitize [JSON]",
		Short: "Print JSON text after masking and quote repair",
		Long: `sanitize replaces masked values such as "***1234***" with null and escapes
unescaped quotes inside string values. The text is read from the argument or,
without one, from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readText(cmd, args)
			if err != nil {
				return err
			}

			cleaned, applied := sanitize.Default().SanitizeReport(raw)
			if report {
				if len(applied) == 0 {
					fmt.Fprintln(cmd.ErrOrStderr(), "rules applied: none")
				} else {
					fmt.Fprintf(cmd.ErrOrStderr(), "rules applied: %s\n", strings.Join(applied, ", "))
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cleaned)
			return err
		},
	}

	cmd.Flags().BoolVar(&report, "report", false, "list the repair rules that changed the text on standard error")
	return cmd
}

func newFieldCmd() *cobra.Command {
	var (
		kind  string
		trace bool
	)

	cmd := &cobra.Command{
		Use:   "field PATH [JSON]",
		Short: "Extract one dot-separated field from JSON text",
		Long: `field resolves PATH (for example clientReferenceInformation.code) in the JSON
text given as argument or on standard input. The text is parsed strictly after
sanitizing; when that fails the field is searched for in the raw text. An
absent value prints as null.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrFieldPathRequired
			}
			k, err := extract.ParseKind(kind)
			if err != nil {
				return err
			}
			f, err := extract.ParseField(args[0], k)
			if err != nil {
				return err
			}
			raw, err := readText(cmd, args[1:])
			if err != nil {
				return err
			}

			res := extract.New(nil).Trace(raw, f)
			out := "null"
			if !res.Value.IsAbsent() {
				out = res.Value.Cell()
			}
			if trace {
				out += "\t(" + res.Method.String() + ")"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "string", "value kind: string or bool")
	cmd.Flags().BoolVar(&trace, "trace", false, "also print whether the strict parser or the fallback answered")
	return cmd
}
