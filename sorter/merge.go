package sorter

import (
	"context"
	"fmt"
	"log"
)

// Snapshot - sorted contents of every chunk, captured after the sort phase.
// Runs live at the same offsets they had in the array, so a group of
// adjacent chunks is a flat slice of the buffer.
type Snapshot struct {
	buf    []int
	chunks []Chunk
}

// NewSnapshot - copy arr, which must hold sorted chunks, into a new snapshot
func NewSnapshot(arr []int, chunks []Chunk) *Snapshot {
	buf := make([]int, len(arr))
	copy(buf, arr)

	return &Snapshot{buf: buf, chunks: chunks}
}

// Run - sorted contents of chunk i
func (s *Snapshot) Run(i int) []int {
	c := s.chunks[i]
	return s.buf[c.Start:c.End]
}

// Len - number of runs in the snapshot
func (s *Snapshot) Len() int {
	return len(s.chunks)
}

// Merger folds the runs of a snapshot into arr, pairwise, in rounds.
// Round with stride s merges groups of s chunks into groups of 2*s chunks.
// Rounds alternate between the snapshot buffer and arr as source and
// destination, so a round never reads what it writes.
type Merger struct {
	arr        []int
	snap       *Snapshot
	partitions int
	logger     *log.Logger
}

// NewMerger - return merger writing the merged snapshot back into arr
func NewMerger(arr []int, snap *Snapshot, logger *log.Logger) *Merger {
	return &Merger{
		arr:        arr,
		snap:       snap,
		partitions: snap.Len(),
		logger:     logger,
	}
}

// Merge - run every merge round and return how many were run.
// A group without a partner in a round is copied through unchanged.
func (m *Merger) Merge(ctx context.Context) (int, error) {
	const op = "Merger.Merge"

	var (
		n = len(m.arr)
		p = m.partitions

		src = m.snap.buf
		dst = m.arr

		rounds = 0
	)

	for stride := 1; stride < p; stride *= 2 {
		mergeStep := 2 * stride
		pool := NewPool(ctx, p)

		for i := 0; i < p; i += mergeStep {
			group := Chunk{Start: bound(i, n, p), End: bound(min(i+mergeStep, p), n, p)}

			if i+stride >= p {
				infof(m.logger, "INFO: stride %d: group %d %s has no partner", stride, i, group)
				pool.Go(group, func(c Chunk) {
					copy(dst[c.Start:c.End], src[c.Start:c.End])
				})
				continue
			}

			middle := bound(i+stride, n, p)
			infof(m.logger, "INFO: stride %d: merge [%d,%d) with [%d,%d)", stride, group.Start, middle, middle, group.End)
			pool.Go(group, func(c Chunk) {
				mergeRuns(dst[c.Start:c.End], src[c.Start:middle], src[middle:c.End])
			})
		}

		if err := pool.Wait(); err != nil {
			return rounds, fmt.Errorf("%s: stride %d: %w", op, stride, err)
		}

		src, dst = dst, src
		rounds++
	}

	// even number of rounds leaves the result in the snapshot buffer
	if rounds > 0 && rounds%2 == 0 {
		copy(m.arr, src)
	}

	return rounds, nil
}

// mergeRuns - stable two-pointer merge of sorted a and b into dst.
// len(dst) must be len(a) + len(b).
func mergeRuns(dst, a, b []int) {
	i, j, k := 0, 0, 0

	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			dst[k] = a[i]
			i++
		} else {
			dst[k] = b[j]
			j++
		}
		k++
	}

	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}
