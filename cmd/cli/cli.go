package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/minibase"
)

// bindCommon registers the flags both tools share. The configuration is loaded
// once the arguments have been validated.
func bindCommon(cmd *cobra.Command, v *viper.Viper, cfg *common.Config) {
	var cfgFile string
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("log-format", common.LogFormatTextValue, "logging format [text|json]")
	cmd.PersistentFlags().String("log-level", zerolog.LevelInfoValue,
		fmt.Sprintf(
			"logging level %s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
		),
	)
	mustBind(v, "log.format", cmd, "log-format")
	mustBind(v, "log.level", cmd, "log-level")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := common.LoadConfig(v, cfgFile, cfg); err != nil {
			return err
		}
		return common.SetLogLevel(cfg.Log.Level, cfg.Log.Format)
	}
}

func mustBind(v *viper.Viper, key string, cmd *cobra.Command, flag string) {
	f := cmd.PersistentFlags().Lookup(flag)
	if f == nil {
		f = cmd.Flags().Lookup(flag)
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

func NewMinimizerCmd() *cobra.Command {
	v := viper.New()
	cfg := common.NewConfig()
	cmd := &cobra.Command{
		Use:   "minimizer <input_file> <output_file>",
		Short: "Minimize a conjunctive query",
		Long:  "Removes redundant atoms from the conjunctive query in input_file and writes the minimal query to output_file.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// usage is only printed for argument errors
			cmd.SilenceUsage = true
			return minibase.MinimizeCQ(args[0], args[1])
		},
	}
	bindCommon(cmd, v, cfg)
	return cmd
}

func NewEvaluatorCmd() *cobra.Command {
	v := viper.New()
	cfg := common.NewConfig()
	cmd := &cobra.Command{
		Use:   "evaluator <database_dir> <input_file> <output_file>",
		Short: "Evaluate a conjunctive query",
		Long:  "Evaluates the conjunctive query in input_file over the relations of database_dir and writes the result rows to output_file.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			// usage is only printed for argument errors
			cmd.SilenceUsage = true
			return minibase.EvaluateCQ(args[0], args[1], args[2], cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Bool("preview", false, "print the result as a table")
	cmd.Flags().Bool("explain", false, "print the query plan")
	cmd.Flags().String("separator", common.DefaultOutputSeparator, "separator between values of an output row")
	bindCommon(cmd, v, cfg)
	mustBind(v, "output.preview", cmd, "preview")
	mustBind(v, "output.explain", cmd, "explain")
	mustBind(v, "output.separator", cmd, "separator")
	return cmd
}
