//go:build !accumdebug

package accum

// debugChecks enables use-after-release and worker range checks
const debugChecks = false
