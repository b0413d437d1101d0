package contract

import (
	"errors"
	"fmt"
	"strings"
)

// Default values for configuration.
const (
	DefaultConfigFile = "data/config.json"
	DefaultRawFile    = "data/raw.jsonl"
	DefaultProcDir    = "data/proc"
	DefaultPlotDir    = "data/plots"
)

// Config holds the runtime configuration for the pipeline.
// This struct remains the "final, validated" config.
type Config struct {
	Repos      []string // Repositories to track, as owner/name identifiers
	RawFile    string   // Append-only raw snapshot log (NDJSON)
	ProcDir    string   // Processed-output directory, wiped and rebuilt per run
	PlotDir    string   // Chart-output directory, wiped and rebuilt per run
	Token      string   // GitHub API token; plaintext, prefer the env var
	DataFile   string   // Raw log override for the verify command
	OutputFile string   // Output prefix for the export command
	Width      int      // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Token      string   `mapstructure:"token"`
	Repos      []string `mapstructure:"repos"`
	Raw        string   `mapstructure:"raw"`
	Proc       string   `mapstructure:"proc"`
	Plots      string   `mapstructure:"plots"`
	Data       string   `mapstructure:"data"`
	OutputFile string   `mapstructure:"output-file"`
	Width      int      `mapstructure:"width"`
}

// ProcessAndValidate turns the raw input into the final validated config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.Token = input.Token
	cfg.RawFile = strings.TrimSpace(input.Raw)
	cfg.ProcDir = strings.TrimSpace(input.Proc)
	cfg.PlotDir = strings.TrimSpace(input.Plots)
	cfg.DataFile = strings.TrimSpace(input.Data)
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)
	cfg.Width = input.Width

	if cfg.RawFile == "" {
		cfg.RawFile = DefaultRawFile
	}
	if cfg.ProcDir == "" {
		cfg.ProcDir = DefaultProcDir
	}
	if cfg.PlotDir == "" {
		cfg.PlotDir = DefaultPlotDir
	}

	cfg.Repos = cfg.Repos[:0]
	for _, repo := range input.Repos {
		repo = strings.TrimSpace(repo)
		if repo == "" {
			continue
		}
		if !strings.Contains(repo, "/") {
			return fmt.Errorf("repo %q is not an owner/name identifier", repo)
		}
		cfg.Repos = append(cfg.Repos, repo)
	}

	return nil
}

// RequireRepos ensures at least one repository is configured; the fetch
// command cannot run without one.
func RequireRepos(cfg *Config) error {
	if len(cfg.Repos) == 0 {
		return errors.New("no repositories configured; set 'repos' in the config file")
	}
	return nil
}

// RequireData ensures the verify command was given a raw log to audit.
func RequireData(cfg *Config) error {
	if cfg.DataFile == "" {
		return errors.New("--data is required for the verify command")
	}
	return nil
}

// RequireOutputFile ensures the export command was given an output prefix.
func RequireOutputFile(cfg *Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for the export command")
	}
	return nil
}
