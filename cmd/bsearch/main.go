// Command bsearch looks up an integer in a sorted list given on the command line.
//
//	bsearch --item 5 1 2 3 4 5 6 7 8 9
//
// It prints the index of the leftmost match, or "not found" and exits 1.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"bsearch_code/algo"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Flags
	item        int
	checkSorted bool
	verbose     bool

	// Logger
	logger *zap.Logger
)

var (
	errNotFound  = errors.New("not found")
	errNotSorted = errors.New("input is not sorted")
)

// exit codes, in the style of grep
const (
	exitFound    = 0
	exitNotFound = 1
	exitUsage    = 2
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bsearch --item N [values...]",
		Short: "Binary search for an integer in a sorted list",
		Long: `bsearch searches the sorted list of integers given as arguments for --item.

On a match it prints the index of the leftmost occurrence. Otherwise it prints
"not found" and exits with status 1. The list is assumed to be sorted in
non-decreasing order; pass --check-sorted to reject input that is not.

Negative values must follow "--" so they are not read as flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		RunE: runSearch,
	}

	addFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("item")
	return cmd
}

func addFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&item, "item", "i", 0, "Integer to search for")
	fs.BoolVar(&checkSorted, "check-sorted", false, "Fail if the values are not sorted")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func parseValues(args []string) ([]int, error) {
	arr := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", a, err)
		}
		arr = append(arr, v)
	}
	return arr, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	arr, err := parseValues(args)
	if err != nil {
		return err
	}
	logger.Debug("Parsed values", zap.Int("count", len(arr)), zap.Int("item", item))

	if checkSorted && !algo.IsSorted(arr) {
		return errNotSorted
	}

	i, ok := algo.Search(arr, item)
	if !ok {
		logger.Debug("Item not found", zap.Int("item", item))
		fmt.Fprintln(cmd.OutOrStdout(), "not found")
		return errNotFound
	}
	logger.Debug("Item found", zap.Int("item", item), zap.Int("index", i))
	fmt.Fprintln(cmd.OutOrStdout(), i)
	return nil
}

// exitCode maps the result of running the command to a process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitFound
	case errors.Is(err, errNotFound):
		return exitNotFound
	default:
		return exitUsage
	}
}

func main() {
	err := newRootCmd().Execute()
	// RunE errors skip post-run hooks, so flush here
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil && !errors.Is(err, errNotFound) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}
