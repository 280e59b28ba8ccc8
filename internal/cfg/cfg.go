// Package cfg provides configuration and command-line interface setup for audiozip.
package cfg

import (
	"fmt"
	"os"
	"strings"

	"audiozip/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "audiozip",
	Short: "audiozip batch-downloads audio as MP3 and serves zip bundles.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load defaults from a config file when one is set
		if viper.IsSet(keys.ConfigFile) {
			configFile := viper.GetString(keys.ConfigFile)

			cInfo, err := os.Stat(configFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed check for config file path: %v\n", err)
				os.Exit(1)
			} else if cInfo.IsDir() {
				fmt.Fprintf(os.Stderr, "config file entered is a directory, should be a file\n")
				os.Exit(1)
			}

			viper.SetConfigFile(configFile)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "failed loading config file: %v\n", err)
				os.Exit(1)
			}
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Lookup("help").Changed {
			return nil
		}
		viper.Set("execute", true)
		return nil
	},
}

// InitCommands initializes the root command and its flags.
func InitCommands() error {
	viper.SetEnvPrefix("audiozip")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // "output-dir" reads AUDIOZIP_OUTPUT_DIR

	return initProgramFlags(rootCmd)
}

// Execute parses flags and runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
