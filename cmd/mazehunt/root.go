package main

import (
	"io"

	"github.com/beka-birhanu/vinom-treasure/infrastruture/logger"
	"github.com/beka-birhanu/vinom-treasure/infrastruture/repo"
	"github.com/beka-birhanu/vinom-treasure/service/i"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds state shared by the subcommands of one invocation.
type app struct {
	configPath string
	jsonOut    bool
	verbose    bool
	cfg        *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "mazehunt",
		Short:         "Hunt for treasure in generated mazes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init" {
				return nil
			}
			cfg, err := loadConfig(a.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding history.db")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log hunt progress to stderr")

	rootCmd.AddCommand(newHuntCmd(a))
	rootCmd.AddCommand(newAppraiseCmd(a))
	rootCmd.AddCommand(newHistoryCmd(a))
	rootCmd.AddCommand(newInitCmd(a))
	return rootCmd
}

// logger returns a colour logger on w when verbose, a silent one otherwise.
func (a *app) logger(w io.Writer) i.Logger {
	if !a.verbose {
		return logger.Nop{}
	}
	l, err := logger.New("HUNT", logger.ColorCyan, w)
	if err != nil {
		return logger.Nop{}
	}
	return l
}

func (a *app) openHistory() (*repo.SQLiteHuntRepo, error) {
	return repo.OpenSQLiteHuntRepo(a.cfg.GetString(cfgKeyDataDir))
}
