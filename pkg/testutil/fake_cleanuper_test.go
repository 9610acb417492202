package testutil

// fakeCleanuper is a Cleanuper that records cleanup functions and runs them,
// most recently added first, when run is called.
type fakeCleanuper struct{ fns []func() }

func (c *fakeCleanuper) Cleanup(fn func()) { c.fns = append(c.fns, fn) }

func (c *fakeCleanuper) run() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
	c.fns = nil
}
