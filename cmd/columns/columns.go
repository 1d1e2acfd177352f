package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vdobler/livechart/cmd/columns/root"
)

var (
	cfgFile string
	cmd     = root.NewRootCmd()
)

func init() {
	cobra.OnInitialize(initConfig)
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.columns.yaml)")
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal("cannot find home directory", "err", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".columns")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal("cannot read config", "err", err)
		}
		return
	}
	log.Debug("using config", "file", viper.ConfigFileUsed())
}
