// Package config loads driver settings from a dotenv file and the process
// environment. The file uses bare keys (S0, T, SEED, ...). In the environment
// the same keys carry EnvPrefix (ASIAN_S0, ASIAN_T, ...) and win over the file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/bcdannyboy/asianmc/models"
	"github.com/bcdannyboy/asianmc/random"
	"github.com/joho/godotenv"
)

// EnvPrefix namespaces environment overrides so unrelated variables such as
// T or M in the user's shell are ignored.
const EnvPrefix = "ASIAN_"

// contractKeys are the variables forwarded to models.ParseAsianOption.
var contractKeys = []string{"OPTION_TYPE", "S0", "STRIKE", "T", "M", "R", "DIV", "SIGMA", "SIMULATIONS"}

// defaults price the reference contract: an at-the-money one-year call.
var defaults = map[string]string{
	"OPTION_TYPE":    "call",
	"S0":             "4",
	"STRIKE":         "4",
	"T":              "1",
	"M":              "100",
	"R":              "0.03",
	"DIV":            "0",
	"SIGMA":          "0.25",
	"SIMULATIONS":    "10000",
	"SEED":           "100",
	"GENERATOR":      string(random.KindMT19937),
	"DIVIDEND_DRIFT": "false",
	"VERBOSITY":      "1",
	"OUTPUT":         "asian_option.json",
	"PLOT":           "",
}

type Config struct {
	Contract      map[string]string
	Seed          uint64
	Generator     random.Kind
	DividendDrift bool
	Verbosity     int
	Output        string
	// Plot is the payoff histogram path. Empty disables plotting.
	Plot          string
}

// Load reads path (a missing file is not an error), overlays the environment
// and fills defaults.
func Load(path string) (*Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		values = map[string]string{}
	}
	return fromValues(values, os.LookupEnv)
}

func fromValues(file map[string]string, env func(string) (string, bool)) (*Config, error) {
	get := func(key string) string {
		if v, ok := env(EnvPrefix + key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		if v, ok := file[key]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return defaults[key]
	}

	cfg := &Config{
		Contract: make(map[string]string, len(contractKeys)),
		Output:   get("OUTPUT"),
		Plot:     get("PLOT"),
	}
	for _, k := range contractKeys {
		cfg.Contract[k] = get(k)
	}

	var err error
	if cfg.Seed, err = strconv.ParseUint(get("SEED"), 10, 64); err != nil {
		return nil, typeError("SEED", get("SEED"), "is not an unsigned integer")
	}
	if cfg.DividendDrift, err = strconv.ParseBool(get("DIVIDEND_DRIFT")); err != nil {
		return nil, typeError("DIVIDEND_DRIFT", get("DIVIDEND_DRIFT"), "is not a boolean")
	}
	if cfg.Verbosity, err = strconv.Atoi(get("VERBOSITY")); err != nil {
		return nil, typeError("VERBOSITY", get("VERBOSITY"), "is not an integer")
	}
	if cfg.Generator, err = random.ParseKind(get("GENERATOR")); err != nil {
		return nil, err
	}
	return cfg, nil
}

func typeError(name, value, reason string) error {
	return &models.ParameterError{Name: name, Value: value, Reason: reason, Err: models.ErrParameterType}
}

// AsianOption parses and validates the contract section.
func (c *Config) AsianOption() (*models.AsianOption, error) {
	var opts []models.Option
	if c.DividendDrift {
		opts = append(opts, models.WithDividendDrift())
	}
	return models.ParseAsianOption(c.Contract, opts...)
}
