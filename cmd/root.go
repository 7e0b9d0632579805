// Package cmd is for command line interactions with the gcwin application
package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/monitoxx/gcwin/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "gcwin",
	Short: `Profile the GC content of a gene across genome records.
Extract a gene from each record file, measure its GC content in fixed windows
against a shuffled control, and write tables for comparing records`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	// settings is an optional parameter for a settings file (that overrides the defaults)
	RootCmd.PersistentFlags().StringP("settings", "s", config.RootSettingsFile, "settings file <YAML>")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug messages")
	RootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log-level", RootCmd.PersistentFlags().Lookup("log-level"))
}

// bindFlags binds a command's own flags to viper settings of the same
// name. It runs before the command so commands sharing a flag name
// don't overwrite each other's binding.
func bindFlags(names ...string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		for _, name := range names {
			if err := viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
				return err
			}
		}
		return nil
	}
}
