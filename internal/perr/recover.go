// Package perr is the recover boundary between the toypascal pipeline and
// its caller: execution uses panic internally to unwind the moment something
// goes wrong (lexing and parsing return errors instead), and Recover turns
// any panic that escapes back into a plain error rather than letting it
// reach the caller as a raw stack trace.
package perr

// Recover runs f in a new goroutine, wrapped in defer logic to turn any
// abnormal exit or panic into a non-nil error return instead of propagating
// it to the caller.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExitError(name, errch)
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}
