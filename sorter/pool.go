package sorter

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Pool - fork-join dispatcher for one phase of work.
// Every task owns the range it was submitted with, Wait is the barrier
// between phases.
type Pool struct {
	group *errgroup.Group
	ctx   context.Context
}

// NewPool - return pool running at most workers tasks at once
func NewPool(ctx context.Context, workers int) *Pool {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	return &Pool{group: group, ctx: ctx}
}

// Go - submit fn over chunk. Blocks while the pool is full.
// Tasks are skipped once the context is done.
func (p *Pool) Go(chunk Chunk, fn func(Chunk)) {
	p.group.Go(func() error {
		if err := p.ctx.Err(); err != nil {
			return err
		}

		fn(chunk)

		return nil
	})
}

// Wait - block until every submitted task has returned
func (p *Pool) Wait() error {
	const op = "Pool.Wait"

	if err := p.group.Wait(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
