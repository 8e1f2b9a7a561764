package main

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/genramsey/config"
)

const longHelp = `Compute generalized Ramsey numbers and the related extremal graphs.

With family "divided" (the default), print R*_k(a,b): the least n such
that every graph of order n has an a-vertex k-divided set, or its
complement has a b-vertex k-divided set. A set is k-divided when every
component of the subgraph it induces has at most k vertices.

With family "sparse", print R_k(a,b) for k-sparse sets instead: sets
inducing a subgraph of maximum degree at most k.

Unless --quiet is given, the number of counterexample graphs of each
order, up to isomorphism, is printed as it is computed. Extremal graphs
are printed in the DOT language, or as graph6 lines with --format graph6.`

// cliFlags holds every flag value; only flags the user set override the
// configuration file.
type cliFlags struct {
	configPath string
	family     string
	workers    int
	maxOrder   int
	quiet      bool
	format     string
	checkpoint string
	logLevel   string
	logFormat  string
	selftest   bool
	f1, f2     string
	forget     string
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}
	root := &cobra.Command{
		Use:           progName + " [flags] k a b",
		Short:         "Compute generalized Ramsey numbers and extremal graphs",
		Long:          longHelp,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if f.selftest || (len(args) == 0 && f.configPath != "") {
				return nil
			}
			if len(args) != 3 {
				return usagef("Must have exactly 3 arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.selftest {
				return runSelfTest(cmd.Context(), cmd.OutOrStdout())
			}
			run, err := resolve(cmd, f, args)
			if err != nil {
				return err
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), run)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "read run settings from a YAML file")
	pf.IntVar(&f.workers, "workers", runtime.GOMAXPROCS(0), "parent graphs expanded concurrently")
	pf.IntVar(&f.maxOrder, "max-order", 0, "stop before examining orders above this (0 = no limit)")
	pf.BoolVarP(&f.quiet, "quiet", "q", false, "do not print counterexample counts")
	pf.StringVar(&f.format, "format", config.FormatDOT, "extremal graph output: dot or graph6")
	pf.StringVar(&f.checkpoint, "checkpoint", "", "directory of the frontier store used to resume runs")
	pf.StringVar(&f.logLevel, "log-level", "warn", "debug, info, warn or error")
	pf.StringVar(&f.logFormat, "log-format", "text", "text or json")

	root.Flags().StringVar(&f.family, "family", config.FamilyDivided, "divided or sparse")
	root.Flags().BoolVar(&f.selftest, "selftest", false, "check known values and exit")

	root.AddCommand(newSearchCmd(f), newCheckpointsCmd(f))
	return root
}

func newSearchCmd(f *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search --f1 EXPR --f2 EXPR [flags] a b",
		Short: "Search with an arbitrary pair of predicates",
		Long: `Find the least n such that every graph of order n has an a-vertex set
satisfying f1, or a b-vertex set satisfying f2.

Predicate expressions: divided(k), divided-complement(k), sparse(k),
sparse-complement(k), independent, clique.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 && !(len(args) == 0 && f.configPath != "") {
				return usagef("Must have exactly 2 arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := resolve(cmd, f, args)
			if err != nil {
				return err
			}
			if !run.Explicit() {
				return usagef("--f1 and --f2 are required")
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), run)
		},
	}
	cmd.Flags().StringVar(&f.f1, "f1", "", "predicate for the a-vertex sets")
	cmd.Flags().StringVar(&f.f2, "f2", "", "predicate for the b-vertex sets")
	return cmd
}

func newCheckpointsCmd(f *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkpoints --checkpoint DIR [--forget KEY]",
		Short: "List the problems stored in a frontier store",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usagef("Must have no arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := resolve(cmd, f, nil)
			if err != nil {
				return err
			}
			if !run.Checkpoint.Enabled() {
				return usagef("--checkpoint is required")
			}
			return runCheckpoints(cmd.Context(), cmd.OutOrStdout(), run, f.forget)
		},
	}
	cmd.Flags().StringVar(&f.forget, "forget", "", "delete the stored levels of this problem key")
	return cmd
}

// resolve merges Default, the --config file, explicitly set flags and the
// positional arguments (k a b for the root command, a b for search), then
// validates the result.
func resolve(cmd *cobra.Command, f *cliFlags, args []string) (config.Run, error) {
	run := config.Default()
	if f.configPath != "" {
		var err error
		if run, err = config.Load(f.configPath); err != nil {
			if errors.Is(err, config.ErrParse) || errors.Is(err, config.ErrInvalid) {
				return config.Run{}, usageError{msg: err.Error()}
			}
			return config.Run{}, err
		}
	}

	fl := cmd.Flags()
	set := func(name string, apply func()) {
		if fl.Lookup(name) != nil && fl.Changed(name) {
			apply()
		}
	}
	set("family", func() { run.Family = f.family })
	set("workers", func() { run.Workers = f.workers })
	set("max-order", func() { run.MaxOrder = f.maxOrder })
	set("quiet", func() { run.Quiet = f.quiet })
	set("format", func() { run.Format = f.format })
	set("checkpoint", func() { run.Checkpoint = config.Checkpoint{Path: f.checkpoint} })
	set("log-level", func() { run.Log.Level = f.logLevel })
	set("log-format", func() { run.Log.Format = f.logFormat })
	set("f1", func() { run.F1 = f.f1 })
	set("f2", func() { run.F2 = f.f2 })

	nums, err := atoiAll(args)
	if err != nil {
		return config.Run{}, err
	}
	switch len(nums) {
	case 3:
		run.K, run.A, run.B = nums[0], nums[1], nums[2]
	case 2:
		run.A, run.B = nums[0], nums[1]
	}

	if err = run.Validate(); err != nil {
		return config.Run{}, usageError{msg: err.Error()}
	}
	return run, nil
}

func atoiAll(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, usagef("Arguments must be integers")
		}
		out[i] = v
	}
	return out, nil
}

// names returns the printed name of the number and the DOT name prefix of
// its extremal graphs.
func names(run config.Run) (number, graphBase string) {
	switch {
	case run.Explicit():
		return fmt.Sprintf("R[%s,%s](%d,%d)", run.F1, run.F2, run.A, run.B),
			fmt.Sprintf("g%d_%de", run.A, run.B)
	case run.Family == config.FamilySparse:
		return fmt.Sprintf("R_%d(%d,%d)", run.K, run.A, run.B),
			fmt.Sprintf("r%d_%d_%de", run.K, run.A, run.B)
	default:
		return fmt.Sprintf("R*_%d(%d,%d)", run.K, run.A, run.B),
			fmt.Sprintf("rs%d_%d_%de", run.K, run.A, run.B)
	}
}
