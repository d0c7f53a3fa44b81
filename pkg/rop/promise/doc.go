// Package promise provides a minimal settle-once promise used to bridge
// rop.Result values and asynchronous work.
//
// - New: pending promise plus resolve/reject functions
// - Go: run a function in a goroutine, panics become rejections
// - Resolve/Reject: already settled promises
// - Await: block until settlement or context end
package promise
