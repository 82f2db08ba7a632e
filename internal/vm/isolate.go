package vm

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/toypascal/internal/parser"
	"github.com/jcorbin/toypascal/internal/perr"
)

// RunWithTimeout executes prog, isolating the run the way an embedder
// hosting untrusted or long-running programs wants: a panic inside the
// executor is recovered into a plain error (via internal/perr) rather than
// taking down the embedder, and a watchdog goroutine races the run against
// timeout (if positive) so a runaway WHILE loop cannot block forever.
//
// The two goroutines share a cancellable context: whichever finishes first
// (the run completing, or the watchdog's deadline firing) cancels the
// other's context, and RunWithTimeout returns the first non-nil error
// either reports.
func (vm *VM) RunWithTimeout(ctx context.Context, prog parser.Program, timeout time.Duration) error {
	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// cancel is called unconditionally once the run finishes, so the
	// watchdog goroutine below is never left blocked on a context that
	// only errgroup itself would cancel (which it does not do for a
	// nil-returning Go func).
	g, gctx := errgroup.WithContext(runCtx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		return perr.Recover("vm", func() error { return vm.Execute(gctx, prog) })
	})
	g.Go(func() error {
		<-gctx.Done()
		if err := runCtx.Err(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	return g.Wait()
}
