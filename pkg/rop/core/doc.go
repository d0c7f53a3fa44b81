// Package core carries configuration through context.Context so that
// helpers deep in a call chain pick up caller defaults without extra
// parameters.
package core
