package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/seqscan/monostack"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	scanInput     string
	scanRelation  string
	scanDistances bool
	scanValues    bool
)

// scanCmd runs the monotonic-stack scan over an integer sequence.
var scanCmd = &cobra.Command{
	Use:   "scan [tokens...]",
	Short: "Nearest qualifying index per position (monotonic-stack scan)",
	Long: `Scan computes, for every position of the input sequence, the index of
the nearest element satisfying the selected relation, or -1 (null in JSON)
when no such element exists.

Relations:
  next-greater       nearest j > i with seq[j] > seq[i]   (default)
  next-smaller       nearest j > i with seq[j] < seq[i]
  previous-greater   nearest j < i with seq[j] > seq[i]
  previous-smaller   nearest j < i with seq[j] < seq[i]

Views:
  --distances  print |j - i| per position instead of indices (0 = no answer)
  --values     print seq[j] per position instead of indices (-1 = no answer)

Examples:
  seqscan scan 73 74 75 71 69 72 76 73
  seqscan scan --relation previous-smaller --input heights.txt
  echo "[2, 1, 2, 4, 3]" | seqscan scan --input - --format json`,
	RunE: runScanCommand,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanRelation, "relation", "r", "next-greater",
		"relation selector (next-greater, next-smaller, previous-greater, previous-smaller)")
	scanCmd.Flags().StringVarP(&scanInput, "input", "i", "",
		"read the sequence from FILE ('-' for standard input)")
	scanCmd.Flags().BoolVar(&scanDistances, "distances", false, "print index distances instead of indices")
	scanCmd.Flags().BoolVar(&scanValues, "values", false, "print qualifying values instead of indices")
	_ = viper.BindPFlag("scan.relation", scanCmd.Flags().Lookup("relation"))
}

func runScanCommand(cmd *cobra.Command, args []string) error {
	if scanDistances && scanValues {
		return fmt.Errorf("seqscan: --distances and --values are mutually exclusive")
	}
	format, err := outputFormat()
	if err != nil {
		return err
	}

	variant, err := monostack.ParseVariant(viper.GetString("scan.relation"))
	if err != nil {
		return err
	}

	text, err := readText(cmd, args, scanInput)
	if err != nil {
		return err
	}
	seq, err := parseSequence(text)
	if err != nil {
		return err
	}

	idx, err := monostack.Scan(seq, monostack.WithVariant(variant))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case scanDistances:
		return printInts(out, monostack.Distances(idx), format)
	case scanValues:
		return printInt64s(out, monostack.Values(seq, idx, -1), format)
	case format == "json":
		return printNullableIndices(out, idx)
	default:
		return printInts(out, idx, format)
	}
}

// printNullableIndices renders a scan result as a JSON array with null for
// unresolved entries, distinguishing "no answer" from any valid index.
func printNullableIndices(w io.Writer, idx []int) error {
	entries := make([]*int, len(idx))
	for i := range idx {
		if idx[i] == monostack.None {
			continue
		}
		j := idx[i]
		entries[i] = &j
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))

	return err
}
