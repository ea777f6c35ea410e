package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	LogFile    string
}

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVar(
		&flags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/comparefiles/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&flags.Verbose,
		"verbose",
		"v",
		false,
		"log comparison phases at debug level",
	)
	cmd.PersistentFlags().StringVar(
		&flags.LogFile,
		"log-file",
		"",
		"write logs to this file instead of stderr",
	)
}

// CompareFlags holds the root command's comparison flags
type CompareFlags struct {
	KnownDigest string
	SinglePass  bool
	Parallel    bool
	PrefixSize  int64
	BlockSize   int
	Output      string
	Timing      bool
	Progress    bool
}

func addCompareFlags(cmd *cobra.Command, flags *CompareFlags) {
	cmd.Flags().StringVar(&flags.KnownDigest, "known-digest", "", "known MD5 of file_b (hex); file_b is then not read")
	cmd.Flags().BoolVar(&flags.SinglePass, "single-pass", false, "skip the prefix check and hash both files fully")
	cmd.Flags().BoolVar(&flags.Parallel, "parallel", false, "hash both files concurrently")
	cmd.Flags().Int64Var(&flags.PrefixSize, "prefix-size", 1024, "bytes hashed by the prefix check")
	cmd.Flags().IntVar(&flags.BlockSize, "block-size", 8192, "read size of the full pass")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "human", "output format: human, json")
	cmd.Flags().BoolVar(&flags.Timing, "time", false, "print the total compare time")
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "show progress bars while hashing (terminal only)")
}
