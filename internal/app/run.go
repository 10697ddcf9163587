package app

import "context"

// Run drives the event loop until a quit command (or ctx cancellation)
// stops it, then persists the rc/info files exactly once on the way out —
// mirroring vifm's own "always write state back on exit, even after q"
// behavior rather than requiring an explicit :write.
func (c *Context) Run(ctx context.Context) error {
	runErr := c.Loop.Run(ctx)
	if err := c.Save(); err != nil && runErr == nil {
		return err
	}
	return runErr
}
