package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name     string
	cfg      config
	args     []string
	input    string
	stdout   string
	stderr   string
	exitCode int
}

func TestRun(t *testing.T) {
	tests := []testCase{
		{name: "empty", input: "", stdout: ""},
		{name: "blank lines", input: "\n \n\t\n", stdout: ""},
		{name: "single line", input: "1+2*3\n", stdout: "(1 + (2 * 3))\n"},
		{name: "crlf", input: "$rank\r\n", stdout: "$rank\n"},
		{name: "several lines", input: "-1+2\n(1+2)*3\n", stdout: "(-(1 + 2))\n((1 + 2) * 3)\n"},
		{name: "args", args: []string{"$rand", "4%2"}, stdout: "$rand\n(4 % 2)\n"},
		{name: "fold", cfg: config{fold: true}, args: []string{"4*(2+1)", "$x+1*2"}, stdout: "12\n($x + 2)\n"},
		{
			name:     "syntax error",
			input:    "1 +\n",
			stderr:   "syntax error at 1:4: expected one of \"(\", \"-\", number, variable\n1 +\n   ^\n",
			exitCode: 1,
		},
		{
			name:     "error does not stop the next lines",
			input:    "()\n2\n",
			stdout:   "2\n",
			exitCode: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := bytes.NewBuffer(nil)
			stderr := bytes.NewBuffer(nil)

			exitCode := run(tt.cfg, tt.args, strings.NewReader(tt.input), stdout, stderr)
			if !assert.Equal(t, tt.exitCode, exitCode, "Exit code mismatch") {
				t.Logf("Stderr: %s", stderr)
			}
			require.Equal(t, tt.stdout, stdout.String(), "Stdout mismatch")
			if tt.stderr != "" {
				require.Equal(t, tt.stderr, stderr.String(), "Stderr mismatch")
			}
		})
	}
}

func TestRenderPretty(t *testing.T) {
	stdout := bytes.NewBuffer(nil)
	exitCode := run(config{pretty: true}, []string{"$rank"}, nil, stdout, bytes.NewBuffer(nil))
	require.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "ast.VarExpr")
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("EXPR_FOLD", "1")
	t.Setenv("EXPR_PRETTY", "")
	t.Setenv("EXPR_PROMPT", "expr> ")

	cfg := loadConfig()
	assert.True(t, cfg.fold)
	assert.False(t, cfg.pretty)
	assert.Equal(t, "expr> ", cfg.prompt)
}
