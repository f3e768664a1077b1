package models

import (
	"strconv"
	"strings"
)

// ParseAsianOption builds a contract from string fields, as read from a dotenv
// file or command line. Keys are matched case-insensitively:
// option_type, s0, strike, t, m, r, div, sigma, simulations.
//
// A value that is not a number of the expected kind fails with
// ErrParameterType. A missing key or an out-of-range value fails with
// ErrInvalidParameter.
func ParseAsianOption(fields map[string]string, opts ...Option) (*AsianOption, error) {
	norm := make(map[string]string, len(fields))
	for k, v := range fields {
		norm[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}

	lookup := func(name string) (string, error) {
		v, ok := norm[strings.ToLower(name)]
		if !ok || v == "" {
			return "", invalid(name, "", "is required")
		}
		return v, nil
	}
	float := func(name string) (float64, error) {
		v, err := lookup(name)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, badType(name, v, "is not a number")
		}
		return f, nil
	}
	integer := func(name string) (int, error) {
		v, err := lookup(name)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, badType(name, v, "is not an integer")
		}
		return n, nil
	}

	optionType, err := lookup("option_type")
	if err != nil {
		return nil, err
	}
	s0, err := float("S0")
	if err != nil {
		return nil, err
	}
	strike, err := float("strike")
	if err != nil {
		return nil, err
	}
	t, err := float("T")
	if err != nil {
		return nil, err
	}
	m, err := integer("M")
	if err != nil {
		return nil, err
	}
	r, err := float("r")
	if err != nil {
		return nil, err
	}
	div, err := float("div")
	if err != nil {
		return nil, err
	}
	sigma, err := float("sigma")
	if err != nil {
		return nil, err
	}
	simulations, err := integer("simulations")
	if err != nil {
		return nil, err
	}

	return NewAsianOption(optionType, s0, strike, t, m, r, div, sigma, simulations, opts...)
}
