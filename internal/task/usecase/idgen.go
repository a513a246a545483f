package usecase

import "time"

// idGenerator issues millisecond timestamps, bumping past the last id so two
// tasks created in the same millisecond still get distinct, increasing ids.
type idGenerator struct {
	now  func() time.Time
	last int64
}

func newIDGenerator(now func() time.Time) *idGenerator {
	return &idGenerator{now: now}
}

func (g *idGenerator) next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// observe makes sure future ids are above id.
func (g *idGenerator) observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
