package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/arloliu/vecmerge"
	"github.com/arloliu/vecmerge/vec"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		dir         string
		output      string
		extension   string
		keepPartial bool
		inspectPath string
	)

	flagSet := pflag.NewFlagSet("mergevec", pflag.ContinueOnError)
	flagSet.StringVar(&dir, "dir", "", "directory containing the .vec files to merge")
	flagSet.StringVarP(&output, "output", "o", "", "path of the aggregate .vec file to write")
	flagSet.StringVar(&extension, "extension", vec.Extension, "file name suffix of input archives")
	flagSet.BoolVar(&keepPartial, "keep-partial", false, "write directly to the output path; a failed merge leaves partial output on disk")
	flagSet.StringVar(&inspectPath, "inspect", "", "print the header and payload digest of a single archive, then exit")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		return 2
	}

	if inspectPath != "" {
		return runInspect(inspectPath)
	}

	if dir == "" || output == "" {
		fmt.Fprintln(os.Stderr, "error: --dir and --output are required")
		printHelp(flagSet)

		return 2
	}

	opts := []vecmerge.MergeOption{vecmerge.WithExtension(extension)}
	if keepPartial {
		opts = append(opts, vecmerge.WithKeepPartialOutput(true))
	}

	summary, err := vecmerge.Merge(dir, output, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	fmt.Printf("merged %d archives into %s\n", len(summary.Inputs), summary.Output)
	fmt.Printf("  total samples: %d\n", summary.TotalCount)
	fmt.Printf("  record size:   %d bytes\n", summary.RecordSize)
	fmt.Printf("  bytes written: %d\n", summary.BytesWritten)

	return 0
}

func runInspect(path string) int {
	info, err := vecmerge.Inspect(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	fmt.Printf("%s\n", info.Path)
	fmt.Printf("  total count:   %d\n", info.Header.TotalCount)
	fmt.Printf("  record size:   %d\n", info.Header.RecordSize)
	fmt.Printf("  min/max:       %d/%d\n", info.Header.MinValue, info.Header.MaxValue)
	fmt.Printf("  payload bytes: %d\n", info.PayloadBytes)
	fmt.Printf("  payload xxh64: %016x\n", info.PayloadDigest)

	return 0
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Mergevec combines .vec sample archives from a directory into one archive.

Usage:
  mergevec --dir <input-dir> --output <aggregate.vec>
  mergevec --inspect <archive.vec>

Flags:
%s`, flagSet.FlagUsages())
}
