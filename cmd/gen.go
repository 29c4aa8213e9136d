package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmdlit-engine/cmdlit/internal/config"
	"github.com/cmdlit-engine/cmdlit/internal/generator"
)

var (
	output   string
	pkgName  string
	validate bool
	verbose  bool
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen [dir...]",
	Short: "Scan Go sources for command-literal directives and generate constructors",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		if cmd.Flags().Changed("output") {
			cfg.Output = output
		}
		if cmd.Flags().Changed("package") {
			cfg.Package = pkgName
		}
		if cmd.Flags().Changed("validate") {
			cfg.Validate = validate
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = verbose
		}

		dirs := args
		if len(dirs) == 0 {
			dirs = []string{"."}
		}

		directives, err := generator.ScanDirs(dirs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cmdlit: %v\n", err)
			os.Exit(1)
		}
		if cfg.Verbose {
			fmt.Printf("found %d directive(s) in %d dir(s)\n", len(directives), len(dirs))
		}

		pkg := cfg.Package
		if pkg == "" && len(directives) > 0 {
			pkg = directives[0].Package
		}

		code, err := generator.Generate(pkg, directives, cfg.Validate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cmdlit: %v\n", err)
			os.Exit(1)
		}

		if err := os.WriteFile(cfg.Output, []byte(code), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "cmdlit: write %s: %v\n", cfg.Output, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d constructor(s))\n", cfg.Output, len(directives))
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutput, "generated file path")
	genCmd.Flags().StringVar(&pkgName, "package", "", "package name for generated code (default: inferred)")
	genCmd.Flags().BoolVar(&validate, "validate", false, "check commands against the known command table")
	genCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
