package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// Sentinel errors for the CLI input boundary. The kernels never see
// malformed data: parsing fails fast with a one-line diagnostic.
var (
	// ErrMalformedInput indicates the sequence or grid could not be parsed.
	ErrMalformedInput = errors.New("seqscan: malformed input")

	// ErrNoInput indicates neither arguments nor --input supplied any data.
	ErrNoInput = errors.New("seqscan: no input provided (pass tokens as arguments or use --input)")
)

// readText gathers raw input text: positional arguments win, then the
// --input file ("-" means standard input).
func readText(cmd *cobra.Command, args []string, inputPath string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if inputPath == "" {
		return "", ErrNoInput
	}
	if inputPath == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("%w: reading standard input: %v", ErrMalformedInput, err)
		}

		return string(data), nil
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrMalformedInput, inputPath, err)
	}

	return string(data), nil
}

// parseSequence converts text into a sequence of integers. Two shapes are
// accepted: a JSON array ("[73, 74, 75]") or whitespace-separated tokens
// ("73 74 75"). An empty input is a valid empty sequence.
func parseSequence(text string) ([]int64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []int64{}, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var seq []int64
		if err := json.Unmarshal([]byte(trimmed), &seq); err != nil {
			return nil, fmt.Errorf("%w: not a JSON array of integers: %v", ErrMalformedInput, err)
		}

		return seq, nil
	}

	fields := strings.Fields(trimmed)
	seq := make([]int64, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d (%q) is not an integer", ErrMalformedInput, i+1, tok)
		}
		seq[i] = v
	}

	return seq, nil
}

// parseGrid converts text into a rectangular grid: one row per
// non-empty line, whitespace-separated integer cells.
// Rectangularity itself is validated by gridscan.New.
func parseGrid(text string) ([][]int, error) {
	var grid [][]int
	for ln, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		row := make([]int, len(fields))
		for i, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, cell %d (%q) is not an integer", ErrMalformedInput, ln+1, i+1, tok)
			}
			row[i] = v
		}
		grid = append(grid, row)
	}

	return grid, nil
}

// printInts writes a slice of integers in the requested format.
func printInts(w io.Writer, values []int, format string) error {
	if format == "json" {
		data, err := json.Marshal(values)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))

		return err
	}

	return printPlain(w, len(values), func(i int) string { return strconv.Itoa(values[i]) })
}

// printInt64s writes a slice of 64-bit integers in the requested format.
func printInt64s(w io.Writer, values []int64, format string) error {
	if format == "json" {
		data, err := json.Marshal(values)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))

		return err
	}

	return printPlain(w, len(values), func(i int) string { return strconv.FormatInt(values[i], 10) })
}

// printPlain writes n space-separated tokens followed by a newline.
// Zero tokens produce a bare newline, keeping line-oriented pipelines sane.
func printPlain(w io.Writer, n int, token func(i int) string) error {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = token(i)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))

	return err
}
