// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// describe reads whitespace-separated observations from a file or
// standard input and prints a summary of their distribution. Tokens
// that do not parse as numbers count as missing values, so columns
// containing "null" work as-is.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/exploredata/statkit/stats"
)

var (
	asJSON    bool
	quartiles bool
)

var rootCmd = &cobra.Command{
	Use:   "describe [file]",
	Short: "Summarize a column of numeric observations",
	Long: `Describe reads whitespace-separated observations from a file or from
standard input and prints their minimum, maximum, mean, median, missing-value
count and, unless disabled, the 25th and 75th percentiles.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := io.Reader(os.Stdin)
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		vs, err := readInput(in)
		if err != nil {
			return err
		}
		sum := stats.Describe(vs, quartiles)

		if asJSON {
			out, err := json.MarshalIndent(sum, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		printSummary(sum)
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	rootCmd.Flags().BoolVar(&quartiles, "quartiles", true, "include the 25th and 75th percentiles")
}

func readInput(r io.Reader) ([]any, error) {
	var vs []any
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		vs = append(vs, scanner.Text())
	}
	return vs, scanner.Err()
}

func printSummary(s *stats.Summary) {
	fmt.Printf("%8s %d\n", "null", s.Nulls)
	fmt.Printf("%8s %.6g\n", "min", s.Minimum)
	if s.Quartiles {
		fmt.Printf("%8s %.6g\n", "25%ile", s.Q25)
	}
	fmt.Printf("%8s %.6g\n", "median", s.Median)
	fmt.Printf("%8s %.6g\n", "mean", s.Mean)
	if s.Quartiles {
		fmt.Printf("%8s %.6g\n", "75%ile", s.Q75)
	}
	fmt.Printf("%8s %.6g\n", "max", s.Maximum)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
