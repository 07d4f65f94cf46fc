package main

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd is the base command; every tool hangs off it.
var rootCmd = &cobra.Command{
	Use:   "xlsq",
	Short: "Inspect Excel spreadsheets and convert them to sqlite",
	Long: `xlsq decodes the data grid of an Excel (.xlsx) document and can dump it,
query it interactively, or load it into a sqlite database table.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("[✗]", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.xlsq.yaml)")
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println("[✗]", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".xlsq")
	}

	viper.SetEnvPrefix("xlsq")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
