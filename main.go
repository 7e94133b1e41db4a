package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"ompsort/sorter"
)

const usage = "Usage: ompsort [flags] <number of processes> <input file name>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run - sort the input file named in args and return the exit code.
// Output file errors are logged but do not change the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", log.LstdFlags)

	flags := pflag.NewFlagSet("ompsort", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	output := flags.StringP("output", "o", "output.txt", "file to write sorted numbers to")
	verbose := flags.BoolP("verbose", "v", false, "trace chunks and merge rounds to stderr")
	flags.Usage = func() {
		fmt.Fprintln(stderr, usage)
		flags.PrintDefaults()
	}

	// a negative number of processes reads as a shorthand flag and ends up here
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		fmt.Fprintln(stderr, "Error:", err)
		flags.Usage()
		return 1
	}

	if flags.NArg() != 2 {
		flags.Usage()
		return 1
	}

	partitions, err := strconv.Atoi(flags.Arg(0))
	if err != nil {
		logger.Printf("%s\nprogram argument 'number of processes' must be an integer", usage)
		return 1
	}

	var opts []sorter.Option
	if *verbose {
		opts = append(opts, sorter.WithLogger(logger))
	}

	s, err := sorter.New(partitions, opts...)
	if err != nil {
		logger.Printf("%s\n%s", usage, err)
		return 1
	}

	start := time.Now()

	nums, err := sorter.ReadFile(flags.Arg(1))
	if err != nil {
		logger.Printf("Error: unable to read file %s: %s", flags.Arg(1), err)
		return 1
	}

	stats, err := s.Sort(context.Background(), nums)
	if err != nil {
		logger.Println(err)
		return 1
	}

	fmt.Fprintf(stdout, "Sorting duration: %d milliseconds\n", time.Since(start).Milliseconds())

	if *verbose {
		logger.Printf("INFO: chunks %v, %d merge rounds", stats.Chunks, stats.Rounds)
	}

	if _, err := sorter.WriteFile(*output, nums); err != nil {
		logger.Println("Error: unable to create output file:", err)
	}

	return 0
}
