package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dpll-sat/dpll/cnf"
	"github.com/dpll-sat/dpll/solver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		check   bool
	)
	cmd := &cobra.Command{
		Use:   "dpll [flags] file...",
		Short: "Decide satisfiability of CNF instance files",
		Long: `dpll reads instance files where each non-blank line is a clause of
whitespace-separated literal tokens ("2 -0 4") and a blank line starts a
new formula. Each formula is solved in order; the output is either
UNSATISFIABLE or SATISFIABLE followed by the model found.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			for _, path := range args {
				if err := solveFile(cmd, path, logger, verbose, check); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace decisions and print search statistics")
	cmd.Flags().BoolVar(&check, "check", false, "re-evaluate each model before printing it")
	return cmd
}

func solveFile(cmd *cobra.Command, path string, logger *logrus.Logger, verbose, check bool) error {
	formulas, err := cnf.LoadInstances(path)
	if err != nil {
		return err
	}
	for i, f := range formulas {
		s := solver.New(f, solver.WithLogger(logger))
		s.Verbose = verbose
		if s.Solve() == solver.Sat {
			model := s.Model()
			if check && !solver.Evaluate(f, model) {
				return errors.Errorf("solver returned a non-satisfying model for formula %d of %q", i+1, path)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "SATISFIABLE")
			if out := model.String(); out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "UNSATISFIABLE")
		}
		if verbose {
			logger.WithFields(logrus.Fields{
				"decisions": s.Stats.NbDecisions,
				"units":     s.Stats.NbUnitProps,
				"pures":     s.Stats.NbPureLits,
				"conflicts": s.Stats.NbConflicts,
			}).Info("search finished")
		}
	}
	return nil
}
