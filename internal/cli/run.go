// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/invring/invariant"
	"github.com/katalvlaran/invring/problem"
)

const (
	flagBound   = "bound"
	flagWorkers = "workers"
	flagOutput  = "output"
	flagNoFilt  = "no-filter"
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <problem.yaml>",
		Short: "Compute invariant ring generators for a problem file",
		Example: `  invring run quarter-turn.yaml
  invring run --bound 6 --output yaml s3.yaml
  invring run --loglevel debug --workers 4 s3.yaml`,
		Args:              cobra.ExactArgs(1),
		RunE:              runProblem,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}
	cmd.Flags().Int(flagBound, -1, "degree bound, overriding the problem file")
	cmd.Flags().Int(flagWorkers, runtime.NumCPU(), "goroutines used for Reynolds averaging")
	cmd.Flags().Bool(flagNoFilt, false, "average every monomial instead of filtering explained ones")
	enumVar(cmd.Flags(), flagOutput, "o", []string{"table", "yaml"}, "output format")

	return cmd
}

func runProblem(cmd *cobra.Command, args []string) error {
	logger, err := baseLogger(cmd)
	if err != nil {
		return err
	}
	bound, err := cmd.Flags().GetInt(flagBound)
	if err != nil {
		return err
	}
	workers, err := cmd.Flags().GetInt(flagWorkers)
	if err != nil {
		return err
	}
	if workers < 1 {
		return fmt.Errorf("--%s must be at least 1", flagWorkers)
	}
	noFilter, err := cmd.Flags().GetBool(flagNoFilt)
	if err != nil {
		return err
	}
	output, err := enumGet(cmd.Flags(), flagOutput)
	if err != nil {
		return err
	}

	p, err := problem.Load(args[0])
	if err != nil {
		return err
	}
	in, err := p.Input(bound)
	if err != nil {
		return err
	}

	opts := []invariant.Option{
		invariant.WithLogger(logger.With("problem", p.Name)),
		invariant.WithWorkers(workers),
	}
	if p.Variables != nil {
		opts = append(opts, invariant.WithVariableNames(p.Variables))
	}
	if noFilter {
		opts = append(opts, invariant.WithoutCandidateFilter())
	}

	res, err := invariant.Build(in, opts...)
	if err != nil && !(errors.Is(err, invariant.ErrStalled) || errors.Is(err, invariant.ErrSeriesMismatch)) {
		return err
	}
	if res != nil {
		r := newReport(p, in.Bound, res)
		if err != nil {
			r.Status = statusIncomplete
		}
		if rerr := render(cmd.OutOrStdout(), output, r); rerr != nil {
			return rerr
		}
	}

	return err
}
