package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fairway/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `	  __       _
	 / _| __ _(_)_ ____      ____ _ _   _
	| |_ / _` + "`" + ` | | '__\ \ /\ / / _` + "`" + ` | | | |
	|  _| (_| | | |   \ V  V / (_| | |_| |
	|_|  \__,_|_|_|    \_/\_/ \__,_|\__, |
	                                |___/

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fairway",
	Short: "A golf round tracker with World Handicap System calculations.",
	Long: LOGO + `fairway records your golf rounds, computes the WHS score differential
for each one and keeps your handicap index up to date, right from your
command line. Rounds live in a local file (or SQLite database) that you own.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fairway.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("store", "s", "", "Path to the round store (overrides config)")
	rootCmd.PersistentFlags().StringP("backend", "b", "", "Storage backend: file or sqlite (overrides config)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".fairway")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.fairway.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.path", "")
	viper.SetDefault("storage.capacity", 0)

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
