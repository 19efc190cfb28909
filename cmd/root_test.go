package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/josephlewis42/gocat/core/vos"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args []string, stdin string) (status int, stdout, stderr string) {
	t.Helper()

	fs := vos.NewMemFs()
	require.NoError(t, afero.WriteFile(fs, "/one.txt", []byte("one\n\n\n"), 0600))
	require.NoError(t, afero.WriteFile(fs, "/two.txt", []byte("\ntwo\n"), 0600))

	var outBuf, errBuf bytes.Buffer
	status = Run(fs, args, strings.NewReader(stdin), &outBuf, &errBuf)
	return status, outBuf.String(), errBuf.String()
}

func TestRun(t *testing.T) {
	cases := map[string]struct {
		args       []string
		stdin      string
		wantStatus int
		wantOut    string
		wantErr    string
	}{
		"stdin": {
			args:    nil,
			stdin:   "piped",
			wantOut: "piped",
		},
		"files": {
			args:    []string{"/one.txt", "/two.txt"},
			wantOut: "one\n\n\n\ntwo\n",
		},
		"flags reach cat": {
			args:    []string{"-sn", "/one.txt", "/two.txt"},
			wantOut: "     1\tone\n     2\t\n     3\ttwo\n",
		},
		"subcommand names are files": {
			args:       []string{"help"},
			wantStatus: 1,
			wantErr:    "cat: help: file does not exist\n",
		},
		"missing file": {
			args:       []string{"/one.txt", "/nope"},
			wantStatus: 1,
			wantOut:    "one\n\n\n",
			wantErr:    "cat: /nope: file does not exist\n",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			status, stdout, stderr := run(t, tc.args, tc.stdin)

			assert.Equal(t, tc.wantStatus, status, "exit code")
			assert.Equal(t, tc.wantOut, stdout)
			assert.Equal(t, tc.wantErr, stderr)
		})
	}
}

func TestRun_help(t *testing.T) {
	for _, flag := range []string{"--help", "-h"} {
		t.Run(flag, func(t *testing.T) {
			status, stdout, stderr := run(t, []string{flag}, "")

			assert.Equal(t, 0, status, "exit code")
			assert.Contains(t, stdout, "usage: cat [OPTION]... [FILE]...")
			assert.Empty(t, stderr)
		})
	}
}
