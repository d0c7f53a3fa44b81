// Package roplog logs outcomes with log/slog without changing them.
// The taps fit into solo.Tee style pipelines and return their input.
package roplog
