package htmlfilter

import "errors"

var (
	// ErrParseConfig is returned when environment variables cannot be parsed
	// into the config struct.
	ErrParseConfig = errors.New("failed to parse filter config from environment")

	// ErrReadPolicyFile is returned when a YAML policy file cannot be read.
	ErrReadPolicyFile = errors.New("failed to read policy file")

	// ErrParsePolicyFile is returned when a YAML policy file cannot be parsed.
	ErrParsePolicyFile = errors.New("failed to parse policy file")
)
