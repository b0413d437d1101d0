package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{}

	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, DefaultRawFile, cfg.RawFile)
	assert.Equal(t, DefaultProcDir, cfg.ProcDir)
	assert.Equal(t, DefaultPlotDir, cfg.PlotDir)
	assert.Empty(t, cfg.Repos)
}

func TestProcessAndValidateRepos(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{
		Repos: []string{" acme/widget ", "", "acme/gadget"},
		Raw:   "traffic/raw.jsonl",
	}

	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, []string{"acme/widget", "acme/gadget"}, cfg.Repos)
	assert.Equal(t, "traffic/raw.jsonl", cfg.RawFile)
}

func TestProcessAndValidateBadRepo(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{Repos: []string{"not-a-repo"}}

	err := ProcessAndValidate(cfg, input)
	assert.ErrorContains(t, err, "owner/name")
}

func TestRequireHelpers(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, RequireRepos(cfg))
	assert.Error(t, RequireData(cfg))
	assert.Error(t, RequireOutputFile(cfg))

	cfg.Repos = []string{"acme/widget"}
	cfg.DataFile = "raw.jsonl"
	cfg.OutputFile = "out"
	assert.NoError(t, RequireRepos(cfg))
	assert.NoError(t, RequireData(cfg))
	assert.NoError(t, RequireOutputFile(cfg))
}

func TestGapLabels(t *testing.T) {
	assert.Equal(t, FullValue, GetPlainGapLabel(13.2))
	assert.Equal(t, PartialValue, GetPlainGapLabel(4.0))
}
