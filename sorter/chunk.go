package sorter

import "fmt"

// Chunk - half-open index range [Start, End) of the array
type Chunk struct {
	Start int
	End   int
}

// Len - number of elements covered by the chunk
func (c Chunk) Len() int {
	return c.End - c.Start
}

func (c Chunk) String() string {
	return fmt.Sprintf("[%d,%d)", c.Start, c.End)
}

// chunkSize - width of every chunk but the last one
func chunkSize(n, p int) int {
	return n / p
}

// bound - start index of chunk k; bound(p) is n so that the last chunk
// absorbs the remainder of n / p
func bound(k, n, p int) int {
	if k >= p {
		return n
	}
	return k * chunkSize(n, p)
}

// Chunks - split [0, n) into p contiguous disjoint chunks.
// Only chunk p-1 is larger than n / p. With p > n all chunks but the last are empty.
func Chunks(n, p int) []Chunk {
	chunks := make([]Chunk, p)
	for i := range chunks {
		chunks[i] = Chunk{Start: bound(i, n, p), End: bound(i+1, n, p)}
	}

	return chunks
}

// Rounds - number of merge rounds needed to fold p sorted chunks into one, ceil(log2 p)
func Rounds(p int) int {
	rounds := 0
	for stride := 1; stride < p; stride *= 2 {
		rounds++
	}

	return rounds
}
