package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bcdannyboy/asianmc/models"
	"github.com/bcdannyboy/asianmc/random"
)

func noEnv(string) (string, bool) { return "", false }

func TestDefaults(t *testing.T) {
	cfg, err := fromValues(nil, noEnv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Seed != 100 || cfg.Generator != random.KindMT19937 || cfg.DividendDrift || cfg.Verbosity != 1 ||
		cfg.Output != "asian_option.json" || cfg.Plot != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	o, err := cfg.AsianOption()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Type() != models.Call || o.S0() != 4 || o.M() != 100 || o.Simulations() != 10000 {
		t.Fatalf("unexpected contract: %+v", o)
	}
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	body := "OPTION_TYPE=put\nSTRIKE=4.5\nSEED=7\nGENERATOR=pcg\nDIVIDEND_DRIFT=true\nDIV=0.01\nPLOT=payoffs.svg\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	t.Setenv("ASIAN_SEED", "11")
	// Bare names belong to other programs and must not leak into the contract.
	t.Setenv("M", "7")
	t.Setenv("T", "3")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Seed != 11 {
		t.Fatalf("environment should override file, got seed %d", cfg.Seed)
	}
	if cfg.Generator != random.KindPCG || !cfg.DividendDrift || cfg.Plot != "payoffs.svg" {
		t.Fatalf("file values not applied: %+v", cfg)
	}

	o, err := cfg.AsianOption()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Type() != models.Put || o.Strike() != 4.5 || !o.DividendDrift() || o.M() != 100 || o.T() != 1 {
		t.Fatalf("unexpected contract: %+v", o)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
}

func TestTypeErrors(t *testing.T) {
	tests := map[string]string{
		"SEED":           "-1",
		"DIVIDEND_DRIFT": "maybe",
		"VERBOSITY":      "loud",
	}
	for key, value := range tests {
		_, err := fromValues(map[string]string{key: value}, noEnv)
		if !errors.Is(err, models.ErrParameterType) {
			t.Errorf("%s=%s: expected ErrParameterType, got %v", key, value, err)
		}
	}

	if _, err := fromValues(map[string]string{"GENERATOR": "sobol"}, noEnv); !errors.Is(err, random.ErrUnknownGenerator) {
		t.Errorf("expected ErrUnknownGenerator, got %v", err)
	}
}

func TestContractErrorsSurface(t *testing.T) {
	cfg, err := fromValues(map[string]string{"SIGMA": "high"}, noEnv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cfg.AsianOption(); !errors.Is(err, models.ErrParameterType) {
		t.Fatalf("expected ErrParameterType, got %v", err)
	}

	cfg, _ = fromValues(map[string]string{"OPTION_TYPE": "straddle"}, noEnv)
	if _, err := cfg.AsianOption(); !errors.Is(err, models.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}
