package cmd

import (
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/precalc/foundation/core/error"
	"github.com/msto63/precalc/pkg/core/config"
	"github.com/msto63/precalc/pkg/core/logging"
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *logging.Logger
}

// NewRootCommand builds the precalc command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "precalc",
		Short: "precalc - precise chained arithmetic",
		Long: `precalc evaluates chains of additions, subtractions, multiplications
and divisions without binary floating point artifacts:

  precalc eval 0.1 plus 0.2        # 0.3 instead of 0.30000000000000004

Configuration is read from --config, from $PRECALC_CONFIG or from
./configs/precalc.toml, ./precalc.toml, ./precalc.yaml and
~/.config/precalc/config.toml. PRECALC_* variables override the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $PRECALC_CONFIG or ./configs/precalc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")

	rootCmd.AddCommand(
		newEvalCommand(a),
		newConfigCommand(a),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs the precalc command with the process arguments
func Execute() error {
	return run(NewRootCommand())
}

// run executes root and logs a failure on its error stream
func run(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		logger := logging.NewLogger(logging.LoggerConfig{
			ServiceName: root.Name(),
			Level:       "error",
			Format:      "text",
			Output:      root.ErrOrStderr(),
		})
		logging.Wrap(logger, root.Name()).ErrorWithErr("command failed", err, "code", mdwerror.GetCode(err))
	}
	return err
}

// init loads the configuration and builds the logger. Log output goes to
// the command's error stream so stdout only carries results.
func (a *app) init(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if a.cfgFile != "" {
		cfg, err = config.Load(a.cfgFile)
		if err == nil {
			err = config.ApplyEnv(cfg)
		}
		if err == nil {
			err = cfg.Validate()
		}
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	loggerCfg := logging.FromConfig(cfg.General)
	if a.verbose {
		loggerCfg.Level = "debug"
	}
	loggerCfg.Output = cmd.ErrOrStderr()

	a.cfg = cfg
	a.logger = logging.Wrap(logging.NewLogger(loggerCfg), cfg.General.Name)
	a.logger.Debug("configuration loaded", "source", cfg.Source, "precision", cfg.Calculator.Precision)
	return nil
}
