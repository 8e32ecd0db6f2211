package common

import "time"

// Duration wraps time.Duration so config values written as "30s" or
// "5m" decode via time.ParseDuration, matching how the environment
// overrides parse the same fields.
type Duration struct {
	time.Duration
}

// NewDuration wraps a time.Duration for use in config defaults.
func NewDuration(d time.Duration) Duration {
	return Duration{Duration: d}
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
