// Package cmd provides the command-line interface for seqscan.
//
// Configuration sources, in precedence order:
//  1. Command-line flags (--relation, --format, ...) — highest priority
//  2. SEQSCAN_* environment variables (SEQSCAN_SCAN_RELATION, ...)
//  3. A .seqscan.yml configuration file in the working directory,
//     or the file named by --config — lowest priority
//
// Every command reads a sequence (or grid) of integers, runs one kernel
// over it, and writes the result to standard output. Malformed input and
// unknown relation selectors produce a one-line diagnostic on standard
// error and a non-zero exit code; the kernels themselves never fail on
// well-formed input.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "seqscan",
	Short: "Linear-time sequence and grid scans from the command line",
	Long: `seqscan runs the library's kernels over integer input:

  seqscan scan     nearest next/previous greater/smaller element per index
  seqscan topk     the k most extreme values of a sequence
  seqscan islands  connected land regions of a 2D grid

Input is whitespace-separated integers (or a JSON array) from arguments,
a file, or standard input. Output goes to standard output as plain text
or JSON.

Quick start:
  seqscan scan 73 74 75 71 69 72 76 73
  seqscan scan --relation next-smaller --format json --input data.txt
  echo "2 1 2 4 3" | seqscan topk --input - --k 2`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .seqscan.yml)")
	rootCmd.PersistentFlags().StringP("format", "f", "plain", "output format (plain, json)")
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

// initConfig wires viper to the optional config file and SEQSCAN_* env vars.
// A missing config file is not an error; flags keep their defaults.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".seqscan")
	}

	viper.SetEnvPrefix("SEQSCAN")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// outputFormat resolves the effective output format for a command,
// honoring flag > env > config precedence via viper.
func outputFormat() (string, error) {
	format := viper.GetString("format")
	if format != "plain" && format != "json" {
		return "", fmt.Errorf("seqscan: unsupported output format %q (want plain or json)", format)
	}

	return format, nil
}
