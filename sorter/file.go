package sorter

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/edsrzf/mmap-go"
)

const numberDelimiter = " "

// ReadInts - read whitespace separated 32-bit integers from r.
// A token starting with an integer followed by anything else ("5abc", "3.7")
// yields that integer and ends the read. Reading stops without a value
// at a token with no leading integer or one out of the int32 range.
func ReadInts(r io.Reader) ([]int, error) {
	const op = "sorter.ReadInts"

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	var nums []int
	for scanner.Scan() {
		token := scanner.Text()

		num, rest, err := leadingInt(token)
		if err != nil {
			log.Printf("WARN: %s: stop reading at token %d %q: %s", op, len(nums)+1, token, err)
			break
		}

		nums = append(nums, num)

		if rest != "" {
			log.Printf("WARN: %s: stop reading at %q after token %d", op, rest, len(nums))
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return nums, nil
}

// leadingInt - parse the optionally signed decimal prefix of token
// and return what follows it
func leadingInt(token string) (int, string, error) {
	end := 0
	if end < len(token) && (token[end] == '-' || token[end] == '+') {
		end++
	}

	digits := end
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}

	if end == digits {
		return 0, token, strconv.ErrSyntax
	}

	num, err := strconv.ParseInt(token[:end], 10, 32)
	if err != nil {
		return 0, token, err
	}

	return int(num), token[end:], nil
}

// ReadFile - map the file into memory and read integers from it.
// Returns ErrEmptyInput when the file holds no integers.
func ReadFile(path string) ([]int, error) {
	const op = "sorter.ReadFile"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// zero length files can not be mapped
	if stat.Size() == 0 {
		return nil, fmt.Errorf("%s: %s: %w", op, path, ErrEmptyInput)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := data.Unmap(); err != nil {
			log.Printf("%s: %s", op, err)
		}
	}()

	nums, err := ReadInts(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(nums) == 0 {
		return nil, fmt.Errorf("%s: %s: %w", op, path, ErrEmptyInput)
	}

	return nums, nil
}

// WriteInts - write nums to w, every number followed by a single space
func WriteInts(w io.Writer, nums []int) error {
	const op = "sorter.WriteInts"

	output := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)

	for _, num := range nums {
		buf = strconv.AppendInt(buf[:0], int64(num), 10)
		buf = append(buf, numberDelimiter...)

		if _, err := output.Write(buf); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := output.Flush(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// outputFile - what WriteFile needs from *os.File
type outputFile interface {
	io.WriteCloser
	Stat() (os.FileInfo, error)
}

// WriteFile - create or truncate path and write nums into it
func WriteFile(path string, nums []int) (os.FileInfo, error) {
	const op = "sorter.WriteFile"

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return writeAndClose(f, nums)
}

// writeAndClose - write nums to f and close it.
// A close error is returned when writing itself succeeded.
func writeAndClose(f outputFile, nums []int) (stat os.FileInfo, err error) {
	const op = "sorter.WriteFile"

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			stat, err = nil, fmt.Errorf("%s: %w", op, cerr)
		}
	}()

	if err := WriteInts(f, nums); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stat, err = f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stat, nil
}
