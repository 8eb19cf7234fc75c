package cmd

import (
	mdwerrors "github.com/msto63/precalc/foundation/core/errors"
	"github.com/msto63/precalc/foundation/utils/mathx"
	"github.com/msto63/precalc/pkg/core/logging"
)

// step is one operator applied to its group of operands
type step struct {
	op       mathx.Operator
	operands []mathx.Operand
}

// chain is a parsed eval command line
type chain struct {
	seed  []mathx.Operand
	steps []step
}

// parseChain splits tokens into an optional seed and operator groups.
// Every token that names an operator starts a new group; all other tokens
// are operands of the current group. A seed is a single leading operand.
func parseChain(tokens []string) (*chain, error) {
	c := &chain{}
	for i, token := range tokens {
		if op, err := mathx.ParseOperator(token); err == nil {
			c.steps = append(c.steps, step{op: op})
			continue
		}

		switch {
		case len(c.steps) > 0:
			last := &c.steps[len(c.steps)-1]
			last.operands = append(last.operands, mathx.Text(token))
		case i == 0:
			c.seed = append(c.seed, mathx.Text(token))
		default:
			return nil, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "eval", token,
				"an operator (plus, minus, times, divide or + - x /)")
		}
	}
	return c, nil
}

// skipped returns the operands the calculator will ignore because they do
// not coerce to a number
func (c *chain) skipped() []mathx.Operand {
	operands := append([]mathx.Operand(nil), c.seed...)
	for _, s := range c.steps {
		operands = append(operands, s.operands...)
	}

	var out []mathx.Operand
	for _, o := range operands {
		if _, ok := o.Float(); !ok {
			out = append(out, o)
		}
	}
	return out
}

// evaluate runs the chain on a calculator built from cfg, tracing every
// step on logger
func (c *chain) evaluate(cfg mathx.Config, logger *logging.Logger) (*mathx.Calculator, error) {
	calc, err := mathx.NewWithConfig(cfg, c.seed...)
	if err != nil {
		return nil, err
	}
	for _, s := range c.steps {
		calc.Apply(s.op, s.operands...)
		logger.Trace("step applied", "operator", s.op.String(), "operands", len(s.operands), "value", calc.String())
	}
	if err := calc.Err(); err != nil {
		return nil, err
	}
	return calc, nil
}
