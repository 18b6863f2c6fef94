package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cliFlags mirrors the flag table in spec §6 one field per flag.
type cliFlags struct {
	beam            int
	iterations      int
	limit           int
	maxSize         int
	minSize         int
	numBest         int
	overlap         string
	prune           bool
	valueBased      bool
	writeCompressed bool
	writePattern    bool
	writeInstances  bool
	temporal        bool
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:           "subdue <input.json>",
		Short:         "Discover repeated, connected subgraph patterns via beam search",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubdue(log, flags, args[0])
		},
	}

	cmd.Flags().IntVar(&flags.beam, "beam", 4, "number of patterns to retain after each expansion, based on value")
	cmd.Flags().IntVar(&flags.iterations, "iterations", 1, "iteration count; 0 means until fully compressed (|E|)")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "max patterns considered; 0 means |E|/2")
	cmd.Flags().IntVar(&flags.maxSize, "maxsize", 0, "max edges per pattern; 0 means |E|/2")
	cmd.Flags().IntVar(&flags.minSize, "minsize", 1, "min edges per pattern")
	cmd.Flags().IntVar(&flags.numBest, "numbest", 3, "size of the reported best-pattern list")
	cmd.Flags().StringVar(&flags.overlap, "overlap", "none", "instance overlap policy: none, vertex, or edge")
	cmd.Flags().BoolVar(&flags.prune, "prune", false, "drop extensions whose value is worse than their parent's")
	cmd.Flags().BoolVar(&flags.valueBased, "valuebased", false, "interpret beam capacity as a distinct-value count")
	cmd.Flags().BoolVar(&flags.writeCompressed, "writecompressed", false, "write the compressed graph after the final iteration")
	cmd.Flags().BoolVar(&flags.writePattern, "writepattern", false, "write the best pattern's definition graph per iteration")
	cmd.Flags().BoolVar(&flags.writeInstances, "writeinstances", false, "write the best pattern's instances per iteration")
	cmd.Flags().BoolVar(&flags.temporal, "temporal", false, "enable temporal-rank-sensitive matching")

	return cmd
}
