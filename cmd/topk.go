package cmd

import (
	"github.com/katalvlaran/seqscan/topk"
	"github.com/spf13/cobra"
)

var (
	topkInput    string
	topkK        int
	topkSmallest bool
)

// topkCmd selects the k most extreme values of a sequence.
var topkCmd = &cobra.Command{
	Use:   "topk [tokens...]",
	Short: "The k largest (or smallest) values of a sequence",
	Long: `Topk folds the input through a fixed-capacity heap and prints the k
most extreme values, best-first: descending for the largest, ascending for
the smallest. Memory stays O(k) regardless of input length.

Examples:
  seqscan topk --k 3 3 1 5 12 2 11
  seqscan topk --k 2 --smallest --input readings.txt`,
	RunE: runTopkCommand,
}

func init() {
	rootCmd.AddCommand(topkCmd)

	topkCmd.Flags().IntVarP(&topkK, "k", "k", 1, "how many values to keep (must be positive)")
	topkCmd.Flags().BoolVar(&topkSmallest, "smallest", false, "keep the smallest values instead of the largest")
	topkCmd.Flags().StringVarP(&topkInput, "input", "i", "",
		"read the sequence from FILE ('-' for standard input)")
}

func runTopkCommand(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	text, err := readText(cmd, args, topkInput)
	if err != nil {
		return err
	}
	seq, err := parseSequence(text)
	if err != nil {
		return err
	}

	var opts []topk.Option
	if topkSmallest {
		opts = append(opts, topk.WithSmallest())
	}
	best, err := topk.Largest(seq, topkK, opts...)
	if err != nil {
		return err
	}

	return printInt64s(cmd.OutOrStdout(), best, format)
}
