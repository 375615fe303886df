package csi

import "time"

// Config holds the controller configuration.
type Config struct {
	// Variant selects the hardware variant (PHY family, SoC, revision)
	Variant Variant

	// Logger is used for logging operations (optional)
	Logger Logger

	// PhaseCallback is called on lifecycle transitions (optional)
	PhaseCallback PhaseCallback

	// PollInterval is the wait between two polls of the reset bit
	PollInterval time.Duration

	// PollAttempts is the number of reset bit polls before giving up
	PollAttempts int

	// Sleep waits between reset polls. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		PollInterval: 10 * time.Microsecond,
		PollAttempts: 10,
		Sleep:        time.Sleep,
	}
}

// Option is a functional option for configuring the Controller.
type Option func(*Config)

// WithVariant selects the hardware variant.
//
// Example:
//
//	ctrl := csi.New(bus, csi.WithVariant(csi.Variant{
//	    PHY: csi.PHYFamilyDPHY,
//	    SoC: csi.SoCExynos8895,
//	}))
func WithVariant(v Variant) Option {
	return func(c *Config) {
		c.Variant = v
	}
}

// WithLogger sets a logger for the controller operations.
//
// Example:
//
//	ctrl := csi.New(bus, csi.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithPhaseCallback sets a callback for lifecycle transitions.
func WithPhaseCallback(callback PhaseCallback) Option {
	return func(c *Config) {
		c.PhaseCallback = callback
	}
}

// WithPollInterval sets the wait between reset bit polls.
// Default is 10µs.
func WithPollInterval(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.PollInterval = d
		}
	}
}

// WithPollAttempts sets how many times the reset bit is polled.
// Default is 10.
func WithPollAttempts(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.PollAttempts = n
		}
	}
}

// WithSleep replaces the function used to wait between reset polls.
// Tests use it to avoid real delays.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Config) {
		if sleep != nil {
			c.Sleep = sleep
		}
	}
}
