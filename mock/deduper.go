package mock

import "github.com/fwojciec/nhkeasy"

var _ nhkeasy.Deduper = (*Deduper)(nil)

// Deduper is a mock implementation of nhkeasy.Deduper.
type Deduper struct {
	AddFn  func(key string)
	TestFn func(key string) bool
}

func (d *Deduper) Add(key string) {
	d.AddFn(key)
}

func (d *Deduper) Test(key string) bool {
	return d.TestFn(key)
}
