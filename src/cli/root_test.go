// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/cli"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/config"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/extract"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/pipeline"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const version = "1.3.3.7-testing"

const export = `payment_id,flow,created_at,response,request
pay_1,Authorize,2024-01-01,"{""id"":""txn_123""}","{""clientReferenceInformation"":{""code"":""att_1""},""processingInformation"":{""capture"":true}}"
pay_1,Authorize,2024-01-02,"{""id"":""txn_123""}","{""clientReferenceInformation"":{""code"":""att_1""}}"
pay_2,Capture,2024-01-03,"{""id"":""txn_456""}","{""clientReferenceInformation"":{""code"":""att_2""}}"
pay_3,SetupMandate,2024-01-04,"{""id"":""***MASKED***""}","{""clientReferenceInformation"":{""code"":""att_3""}}"
`

// run executes the command tree with args and returns stdout, stderr and the error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{config.EnvConfigFile, config.EnvInput, config.EnvOutput, config.EnvFlows} {
		t.Setenv(k, "")
	}
	cli.OperationPerformed = false
	cli.OperationPerformedSuccessfully = false

	var stdout, stderr bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&stderr)

	cmd := cli.NewRootCmd(version, log)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeExport(t *testing.T) (dir, input string) {
	t.Helper()
	dir = t.TempDir()
	input = filepath.Join(dir, "payments.csv")
	require.NoError(t, os.WriteFile(input, []byte(export), 0o644))
	return dir, input
}

func TestExecute_NoSubcommand(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"txn-triple-extractor", "--version"}
	log := logger.NewCLILogger()
	log.SetOutput(&bytes.Buffer{})

	assert.NoError(t, cli.Execute(context.Background(), version, log))
}

func TestExtractCmd(t *testing.T) {
	dir, input := writeExport(t)
	output := filepath.Join(dir, "request_ids.csv")

	stdout, stderr, err := run(t, "", "extract", "-i", input, "-o", output, "--format", "json")
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "payment_id,connector_transaction_id,attempt_id,merchant_id\n"+
		"pay_1,txn_123,att_1,\n"+
		"pay_3,,att_3,\n", string(got))

	var sum map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &sum))
	assert.EqualValues(t, 4, sum["total"])
	assert.EqualValues(t, 3, sum["filtered"])
	assert.EqualValues(t, 1, sum["duplicates"])
	assert.EqualValues(t, 2, sum["written"])
	assert.EqualValues(t, 0, sum["errors"])

	assert.Contains(t, stderr, "Reading "+input)
	assert.True(t, cli.OperationPerformed)
	assert.True(t, cli.OperationPerformedSuccessfully)
}

func TestExtractCmd_Flows(t *testing.T) {
	dir, input := writeExport(t)
	output := filepath.Join(dir, "capture.csv")

	stdout, _, err := run(t, "", "extract", "-i", input, "-o", output, "--flows", "Capture")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Records written")

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "payment_id,connector_transaction_id,attempt_id,merchant_id\npay_2,txn_456,att_2,\n", string(got))
}

func TestExtractCmd_ConfigFile(t *testing.T) {
	dir, _ := writeExport(t)
	cfgPath := filepath.Join(dir, "extractor.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input: payments.csv\noutput: out.csv\nsummaryFormat: json\n"), 0o644))

	stdout, _, err := run(t, "", "extract", "-c", cfgPath)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)), "summary format comes from the config file")

	_, err = os.Stat(filepath.Join(dir, "out.csv"))
	assert.NoError(t, err)
}

func TestExtractCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "request_ids.csv")

	t.Run("MissingInput", func(t *testing.T) {
		stdout, _, err := run(t, "", "extract", "-i", filepath.Join(dir, "missing.csv"), "-o", output)
		require.Error(t, err)
		assert.ErrorIs(t, err, pipeline.ErrInputNotFound)
		assert.Empty(t, stdout, "no summary on fatal errors")
		assert.True(t, cli.OperationPerformed)
		assert.False(t, cli.OperationPerformedSuccessfully)

		_, statErr := os.Stat(output)
		assert.ErrorIs(t, statErr, os.ErrNotExist)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, _, err := run(t, "", "extract", "-o", output, "--format", "xml")
		assert.ErrorIs(t, err, cli.ErrUnknownFormat)
	})

	t.Run("UnexpectedArgument", func(t *testing.T) {
		_, _, err := run(t, "", "extract", "payments.csv")
		assert.Error(t, err)
	})
}

func TestParseCmd(t *testing.T) {
	dir, input := writeExport(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "AllRows",
			want: "payment_id,flow,created_at,connector_transaction_id,attempt_id,capture\n" +
				"pay_1,Authorize,2024-01-01,txn_123,att_1,true\n" +
				"pay_1,Authorize,2024-01-02,txn_123,att_1,\n" +
				"pay_2,Capture,2024-01-03,txn_456,att_2,\n" +
				"pay_3,SetupMandate,2024-01-04,,att_3,\n",
		},
		{
			name: "Dedup",
			args: []string{"--dedup"},
			want: "payment_id,flow,created_at,connector_transaction_id,attempt_id,capture\n" +
				"pay_1,Authorize,2024-01-01,txn_123,att_1,true\n" +
				"pay_2,Capture,2024-01-03,txn_456,att_2,\n" +
				"pay_3,SetupMandate,2024-01-04,,att_3,\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(dir, tt.name+".csv")
			args := append([]string{"parse", "-i", input, "-o", output}, tt.args...)

			_, _, err := run(t, "", args...)
			require.NoError(t, err)

			got, err := os.ReadFile(output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestSanitizeCmd(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		args       []string
		wantOut    string
		wantStderr string
	}{
		{
			name:    "Argument",
			args:    []string{`{"card":"411111******1111","id":"txn_1"}`},
			wantOut: `{"card":null,"id":"txn_1"}` + "\n",
		},
		{
			name:    "Stdin",
			stdin:   `{"value":"brand="x""}` + "\n",
			wantOut: `{"value":"brand=\"x\""}` + "\n",
		},
		{
			name:    "Blank",
			stdin:   "   ",
			wantOut: "{}\n",
		},
		{
			name:       "Report",
			args:       []string{"--report", `{"id":"***MASKED***"}`},
			wantOut:    `{"id":null}` + "\n",
			wantStderr: "rules applied: masked-string\n",
		},
		{
			name:       "ReportNothing",
			args:       []string{"--report", `{"id":"txn_1"}`},
			wantOut:    `{"id":"txn_1"}` + "\n",
			wantStderr: "rules applied: none\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tt.stdin, append([]string{"sanitize"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, stdout)
			assert.Equal(t, tt.wantStderr, stderr)
		})
	}
}

func TestFieldCmd(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "Strict",
			args: []string{"id", `{"id":"txn_1"}`},
			want: "txn_1\n",
		},
		{
			name: "FallbackTrace",
			args: []string{"--trace", "clientReferenceInformation.code", `{"clientReferenceInformation":{"code":"att_9",`},
			want: "att_9\t(fallback)\n",
		},
		{
			name:  "BoolFromStdin",
			stdin: `{"processingInformation":{"capture":false}}`,
			args:  []string{"--kind", "bool", "processingInformation.capture"},
			want:  "false\n",
		},
		{
			name: "Absent",
			args: []string{"id", `{"id":"***MASKED***"}`},
			want: "null\n",
		},
		{
			name:    "NoPath",
			args:    nil,
			wantErr: cli.ErrFieldPathRequired,
		},
		{
			name:    "BadKind",
			args:    []string{"--kind", "number", "id", "{}"},
			wantErr: extract.ErrInvalidField,
		},
		{
			name:    "BadPath",
			args:    []string{"a..b", "{}"},
			wantErr: extract.ErrInvalidField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.stdin, append([]string{"field"}, tt.args...)...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}
