package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adwords-sim/internal/model"
	"adwords-sim/internal/strategy"
)

const universeYAML = `
advertisers:
  - {id: a1, budget: 3}
  - {id: a2, budget: 1}
queries:
  - {label: q1, advertisers: [a1, a2], bids: [0.5, 0.75]}
  - {label: q2, advertisers: [a2], bids: [1]}
timeline: [q1, q2, q1]
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "run.yaml", "strategy:\n  name: balance\n"+universeYAML)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "balance", cfg.Strategy.Name)
	assert.Equal(t, []string{"q1", "q2", "q1"}, cfg.Timeline)
	assert.Equal(t, QueryConfig{Label: "q1", Advertisers: []string{"a1", "a2"}, Bids: []float64{0.5, 0.75}}, cfg.Queries[0])

	s, err := cfg.NewStrategy()
	require.NoError(t, err)
	assert.Equal(t, "balance", s.Name())
}

func TestLoad_UniverseFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", universeYAML)
	path := writeFile(t, dir, "run.yaml", `
universe_file: base.yaml
strategy: {name: "3", params: {scoring: spent-fraction}}
timeline: [q2, q2]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.UniverseFile)
	assert.Len(t, cfg.Advertisers, 2)
	assert.Len(t, cfg.Queries, 2)
	assert.Equal(t, []string{"q2", "q2"}, cfg.Timeline)
	assert.Equal(t, "spent-fraction", cfg.Strategy.Params["scoring"])
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]struct {
		body string
		want error
	}{
		"misaligned": {
			body: "strategy: {name: greedy}\nadvertisers: [{id: a1, budget: 1}]\nqueries: [{label: q1, advertisers: [a1], bids: [1, 2]}]\ntimeline: [q1]\n",
			want: model.ErrMisalignedBids,
		},
		"unknown strategy": {
			body: "strategy: {name: \"4\"}\n" + universeYAML,
			want: strategy.ErrUnknownStrategy,
		},
		"unknown advertiser": {
			body: "strategy: {name: greedy}\nadvertisers: [{id: a1, budget: 1}]\nqueries: [{label: q1, advertisers: [zz], bids: [1]}]\ntimeline: [q1]\n",
			want: model.ErrUnknownAdvertiser,
		},
		"unknown timeline label": {
			body: "strategy: {name: greedy}\nadvertisers: [{id: a1, budget: 1}]\nqueries: [{label: q1, advertisers: [a1], bids: [1]}]\ntimeline: [q1, q9]\n",
			want: model.ErrUnknownQuery,
		},
		"infinite budget": {
			body: "strategy: {name: greedy}\nadvertisers: [{id: a1, budget: .inf}]\nqueries: []\ntimeline: [q1]\n",
			want: model.ErrNonFiniteBudget,
		},
		"nan bid": {
			body: "strategy: {name: \"3\"}\nadvertisers: [{id: a1, budget: 1}]\nqueries: [{label: q1, advertisers: [a1], bids: [.nan]}]\ntimeline: [q1]\n",
			want: model.ErrNonFiniteBid,
		},
		"negative budget": {
			body: "strategy: {name: greedy}\nadvertisers: [{id: a1, budget: -1}]\nqueries: []\ntimeline: [q1]\n",
			want: model.ErrNegativeBudget,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, "bad.yaml", tc.body)
			_, err := Load(path)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	path := writeFile(t, dir, "nostrategy.yaml", universeYAML)
	_, err := Load(path)
	assert.EqualError(t, err, "strategy.name is required")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestBuild_ReturnsIndependentUniverses(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadUnchecked(writeFile(t, dir, "u.yaml", universeYAML))
	require.NoError(t, err)

	u1, err := cfg.Build()
	require.NoError(t, err)
	u2, err := cfg.Build()
	require.NoError(t, err)

	a1, _ := u1.Advertiser("a1")
	require.True(t, a1.Charge(1))
	b1, _ := u2.Advertiser("a1")
	assert.Equal(t, 3.0, b1.Remaining())
}

func TestMergeUniverse(t *testing.T) {
	base := Config{
		Strategy:    StrategyConfig{Name: "greedy"},
		Advertisers: []AdvertiserConfig{{ID: "a1", Budget: 1}},
		Timeline:    []string{"q1"},
	}
	out := MergeUniverse(base, Config{UniverseFile: "x.yaml", Timeline: []string{"q2"}})
	assert.Equal(t, "greedy", out.Strategy.Name)
	assert.Equal(t, base.Advertisers, out.Advertisers)
	assert.Equal(t, []string{"q2"}, out.Timeline)
	assert.Empty(t, out.UniverseFile)
}

func TestMergeUniverse_StrategyParamsWithoutName(t *testing.T) {
	base := Config{Strategy: StrategyConfig{Name: "3", Params: map[string]any{"scoring": "spent-fraction", "keep": 1}}}
	out := MergeUniverse(base, Config{Strategy: StrategyConfig{Params: map[string]any{"scoring": "remaining-budget"}}})

	assert.Equal(t, "3", out.Strategy.Name)
	assert.Equal(t, map[string]any{"scoring": "remaining-budget", "keep": 1}, out.Strategy.Params)
	assert.Equal(t, "spent-fraction", base.Strategy.Params["scoring"], "base params are not mutated")
}

func TestLoad_UniverseFileKeepsOverridingParams(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "strategy: {name: general-balance}\n"+universeYAML)
	path := writeFile(t, dir, "run.yaml", "universe_file: base.yaml\nstrategy: {params: {scoring: spent-fraction}}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "general-balance", cfg.Strategy.Name)
	assert.Equal(t, "spent-fraction", cfg.Strategy.Params["scoring"])

	s, err := cfg.NewStrategy()
	require.NoError(t, err)
	gb, ok := s.(*strategy.GeneralBalance)
	require.True(t, ok)
	assert.Equal(t, model.ScorerSpentFraction, gb.Scorer.Name())
}

func TestLoadServer(t *testing.T) {
	t.Setenv("API_ENV", "production")
	t.Setenv("API_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("RUN_CACHE_TTL", "5m")

	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.True(t, cfg.Production())
	assert.Equal(t, uint16(9090), cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5*time.Minute, cfg.RunCacheTTL)
	assert.Equal(t, "examples/universes", cfg.UniverseDir)
}

func TestLogger_Defaults(t *testing.T) {
	l := Logger{Level: "nonsense", Format: "xml"}
	assert.Equal(t, slog.LevelInfo, l.SlogLevel())
	assert.Equal(t, "text", l.SlogFormat())
	assert.NotNil(t, l.NewLogger(os.Stderr))
}
