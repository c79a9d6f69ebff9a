package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pretenst/fabric/internal/config"
	"github.com/pretenst/fabric/internal/observability"
)

var cfgFile string

// rootCmd represents the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "pretenst",
	Short: "Import and render Pretenst tensegrity structures.",
	Long: `pretenst reads Pretenst structure descriptions (a JSON document or a
joints.csv/intervals.csv table pair) and turns them into positioned,
oriented and scaled scene geometry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		observability.InitializeLogger(config.Get().Logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default $HOME/.pretenst.yaml)")
}

// initConfig wires defaults, the optional config file, and environment
// overrides into the config singleton.
func initConfig() error {
	v := viper.New()
	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".pretenst")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PRETENST")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return err
		}
	}

	return config.Load(v)
}
