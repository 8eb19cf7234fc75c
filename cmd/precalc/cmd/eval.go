package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/precalc/foundation/core/errors"
	"github.com/msto63/precalc/foundation/utils/mathx"
	"github.com/msto63/precalc/pkg/core/logging"
)

type evalOptions struct {
	precision     int
	fixed         bool
	digits        int
	checkBoundary bool
}

func newEvalCommand(a *app) *cobra.Command {
	opts := &evalOptions{}

	cmd := &cobra.Command{
		Use:   "eval [seed] <operator> <operand>... [<operator> <operand>...]",
		Short: "Evaluate an arithmetic chain",
		Long: `Evaluates a chain of operations from left to right.

Operators: plus (+), minus (-), times (x, *), divide (/).
Operands that are not numbers are skipped. Flags must precede the
chain; put "--" in front of a negative seed.

Examples:
  precalc eval 0.1 plus 0.2
  precalc eval 10 + 5 times 2
  precalc eval plus 19.99 5.01 times 1.19
  precalc eval --fixed --digits 3 -- -1 divide 3
  precalc eval --check-boundary 9007199254740993 plus 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEval(cmd, opts, args)
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().IntVarP(&opts.precision, "precision", "p", 0, "significant digits (1-20, default: configured)")
	cmd.Flags().BoolVarP(&opts.fixed, "fixed", "f", false, "print with a fixed number of fraction digits")
	cmd.Flags().IntVarP(&opts.digits, "digits", "d", 0, "fraction digits for --fixed (0-20, default: configured)")
	cmd.Flags().BoolVar(&opts.checkBoundary, "check-boundary", false, "warn about values outside the safe integer range")

	return cmd
}

func (a *app) runEval(cmd *cobra.Command, opts *evalOptions, args []string) error {
	parsed, err := parseChain(args)
	if err != nil {
		return err
	}

	cfg := a.cfg.MathxConfig()
	if cmd.Flags().Changed("precision") {
		cfg.Precision = opts.precision
	}
	if cmd.Flags().Changed("digits") {
		cfg.FractionDigits = opts.digits
	}
	if opts.checkBoundary {
		cfg.EnableCheckBoundary = true
	}

	logger := a.logger.WithCorrelationID(uuid.NewString()).With("tokens", len(args))
	cfg.BoundaryHandler = logging.BoundaryHandler(logger.Logger)

	for _, o := range parsed.skipped() {
		logger.WarnWithErr("operand skipped", mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "eval", o.String(), "a number"),
			"operand", o.String())
	}

	calc, err := parsed.evaluate(cfg, logger)
	if err != nil {
		logger.Debug("evaluation failed", "error", err)
		return err
	}

	var out string
	if opts.fixed {
		out = calc.ToFixed()
	} else {
		out = mathx.FormatNumber(calc.ToPrecision())
	}
	logger.Debug("evaluated", "steps", len(parsed.steps), "result", out)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
