// SPDX-License-Identifier: MIT
// Package exchange: functional configuration for the dataset selector.
// Defaults are documented constants; WithX constructors validate their
// inputs strictly and panic on nonsensical values (programmer error);
// gatherOptions resolves setters against the defaults in one place.

package exchange

import (
	"log"
	"math"
)

// DefaultScaleFactor leaves the tabulated values untouched.
const DefaultScaleFactor = 1.0

const (
	panicScaleInvalid = "exchange: WithScaleFactor: factor must be finite"
	panicLoggerNil    = "exchange: WithLogger: logger must be non-nil"
)

// Option mutates internal selector options. Safe to apply repeatedly;
// last-writer-wins semantics.
type Option func(*options)

// options is the resolved configuration. Unexported by design: public
// entry points accept ...Option and resolve via gatherOptions.
type options struct {
	scale  float64
	logger *log.Logger
}

// WithScaleFactor multiplies all six exchange parameters by factor.
// Zero is legal (it zeroes the exchange contribution entirely); NaN and
// ±Inf are programmer errors and panic with a stable message.
func WithScaleFactor(factor float64) Option {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		panic(panicScaleInvalid)
	}

	return func(o *options) { o.scale = factor }
}

// WithLogger routes the dataset-description log lines to l instead of the
// process-default logger. A nil logger is a programmer error and panics.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		scale:  DefaultScaleFactor,
		logger: log.Default(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
