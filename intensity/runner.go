package intensity

import (
	"errors"

	"golang.org/x/sync/errgroup"
)

// runUnits maps fn over units 0..n-1, sequentially or on a bounded
// errgroup per o.Workers. fn owns slot i of the result series and of the
// per-unit error slice, so no extra synchronization is needed; an error
// returned by fn aborts the whole map (reserved for cancellation).
// The caller joins the per-unit errors afterwards.
func runUnits(o Options, n int, fn func(i int) error) error {
	if o.Workers <= 1 {
		for i := 0; i < n; i++ {
			select {
			case <-o.Ctx.Done():
				return o.Ctx.Err()
			default:
			}
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return errors.Join(ctx.Err(), eg.Wait())
		default:
		}
		i := i
		eg.Go(func() error { return fn(i) })
	}
	return eg.Wait()
}

// joinUnitErrors flattens the per-unit error slice into a single joined
// error, or nil when every unit succeeded.
func joinUnitErrors(errs []error) error {
	return errors.Join(errs...)
}
