package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"adwords-sim/internal/config"
	"adwords-sim/internal/data"
)

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI()
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage:")

	code, _, _ = runCLI("bogus")
	assert.Equal(t, 2, code)
}

func TestRun_SampleReport(t *testing.T) {
	code, stdout, stderr := runCLI("run", "--report")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Strategy: general-balance", lines[0])
	assert.Contains(t, lines[8], "No advertiser with sufficient funds left")
	assert.Equal(t, "Revenue: 5.75", lines[9])
}

func TestRun_StrategyFlag(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "ledger.csv")
	code, stdout, stderr := runCLI("run", "--strategy", "2", "--out", out)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Strategy=balance Steps=8 Revenue=4.5")

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(raw)), "\n"), 9)
}

func TestRun_UnknownStrategyExits2(t *testing.T) {
	code, _, stderr := runCLI("run", "--strategy", "4")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown strategy")
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "u.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
strategy: {name: greedy}
advertisers: [{id: a, budget: 1}]
queries: [{label: q, advertisers: [a], bids: [5]}]
timeline: [q, q, q]
`), 0o644))

	code, stdout, stderr := runCLI("run", "--config", path)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Revenue=3")

	code, _, stderr = runCLI("run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error:")
}

func TestRun_NonFiniteNumbersFailAtSetup(t *testing.T) {
	dir := t.TempDir()
	bodies := map[string]string{
		"nan-bid.yaml":    "advertisers: [{id: a, budget: 1}]\nqueries: [{label: q, advertisers: [a], bids: [.nan]}]\ntimeline: [q]\n",
		"inf-budget.yaml": "advertisers: [{id: a, budget: .inf}]\nqueries: [{label: q, advertisers: [a], bids: [1]}]\ntimeline: [q]\n",
	}
	for name, body := range bodies {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		code, stdout, stderr := runCLI("run", "--strategy", "3", "--config", path)
		assert.Equal(t, 1, code, name)
		assert.Empty(t, stdout, name)
		assert.Contains(t, stderr, "finite number", name)
	}
}

func TestCompare(t *testing.T) {
	code, stdout, stderr := runCLI("compare")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "1    greedy"))
	assert.True(t, strings.HasPrefix(lines[2], "2    general-balance"))
	assert.True(t, strings.HasPrefix(lines[3], "3    balance"))
}

func TestSample_RoundTrips(t *testing.T) {
	code, stdout, stderr := runCLI("sample")
	require.Equal(t, 0, code, stderr)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &cfg))
	assert.Equal(t, data.Sample().Advertisers, cfg.Advertisers)
	assert.Equal(t, data.Sample().Timeline, cfg.Timeline)
	require.NoError(t, cfg.Validate())
}
