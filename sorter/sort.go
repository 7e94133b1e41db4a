package sorter

import (
	"context"
	"errors"
	"fmt"
	"log"
)

var (
	ErrEmptyInput        = errors.New("no data found")
	ErrInvalidPartitions = errors.New("number of partitions must be gte 1")
)

// Sorter sorts integers with one worker per chunk:
//  1. split the array into partitions chunks, last one takes the remainder
//  2. bubble sort every chunk concurrently
//  3. snapshot the sorted chunks
//  4. merge adjacent runs pairwise, ceil(log2 partitions) rounds
type Sorter struct {
	partitions int

	// optional trace of chunks and rounds
	logger *log.Logger
}

// Option - configure Sorter
type Option func(*Sorter)

// WithLogger - trace every phase to logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Sorter) {
		s.logger = logger
	}
}

// Stats - what a Sort call did
type Stats struct {
	Partitions int
	ChunkSize  int
	Chunks     []Chunk
	Rounds     int
}

// New - return new sorter using partitions chunks and workers
func New(partitions int, opts ...Option) (*Sorter, error) {
	const op = "sorter.New"

	if partitions < 1 {
		return nil, fmt.Errorf("%s: %w, got %d", op, ErrInvalidPartitions, partitions)
	}

	s := &Sorter{partitions: partitions}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Partitions - number of chunks and workers
func (s *Sorter) Partitions() int {
	return s.partitions
}

// Sort - sort nums in place, ascending
func (s *Sorter) Sort(ctx context.Context, nums []int) (Stats, error) {
	const op = "Sorter.Sort"

	if len(nums) == 0 {
		return Stats{}, fmt.Errorf("%s: %w", op, ErrEmptyInput)
	}

	stats := Stats{
		Partitions: s.partitions,
		ChunkSize:  chunkSize(len(nums), s.partitions),
		Chunks:     Chunks(len(nums), s.partitions),
	}

	infof(s.logger, "INFO: %d numbers, %d chunks of %d", len(nums), stats.Partitions, stats.ChunkSize)

	pool := NewPool(ctx, s.partitions)
	for _, chunk := range stats.Chunks {
		pool.Go(chunk, func(c Chunk) {
			SortRange(nums, c.Start, c.End)
		})
	}

	if err := pool.Wait(); err != nil {
		return stats, fmt.Errorf("%s: %w", op, err)
	}

	snap := NewSnapshot(nums, stats.Chunks)

	rounds, err := NewMerger(nums, snap, s.logger).Merge(ctx)
	stats.Rounds = rounds
	if err != nil {
		return stats, fmt.Errorf("%s: %w", op, err)
	}

	infof(s.logger, "INFO: merged in %d rounds", rounds)

	return stats, nil
}

func infof(logger *log.Logger, format string, args ...any) {
	if logger == nil {
		return
	}

	logger.Printf(format, args...)
}
