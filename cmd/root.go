package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cmdlit",
	Short: "Expand redis-cli style command literals into go-redis builder calls",
	Long: `cmdlit pre-expands terse command literals into go-redis command
constructors at build time.

Mark literals in your source with directive comments:

  //cmdlit:cmd GetUser GET user:1000
  //cmdlit:cmd SetCounter SET counter {}

then run "cmdlit gen" (typically via go:generate) to emit one constructor
function per directive. Malformed literals fail generation, so they can
never reach runtime.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
