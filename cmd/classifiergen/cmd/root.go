// Package cmd implements the classifiergen command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pytrove/trove-classifiers/classifiergen"
	"github.com/pytrove/trove-classifiers/config"
	"github.com/pytrove/trove-classifiers/errors"
	"github.com/pytrove/trove-classifiers/logger"
)

var (
	flagOutput   string
	flagPython   string
	flagSnapshot string
	flagJSON     bool
)

// RootCmd is the classifiergen root command: fetch the canonical classifier
// data, render the Go snapshot, and commit it atomically.
var RootCmd = &cobra.Command{
	Use:   "classifiergen",
	Short: "Generate the Go snapshot of the PyPI trove classifier set",
	Long: `Generate the classifiers package from the canonical trove classifier data.

The classifier list and its version are read from the trove_classifiers
Python distribution installed in the configured interpreter's environment
(pin a version by installing that version first), or from a JSON snapshot
file. The output file is regenerated in full on every run; a failed run
leaves the previous artifact untouched.

Examples:
  classifiergen                                  # regenerate classifiers/classifiers.go
  classifiergen --python python3.12              # use a specific interpreter
  classifiergen --snapshot export.json           # generate from a JSON export
  classifiergen --output /tmp/classifiers.go     # write somewhere else
  classifiergen check                            # verify the committed snapshot is current`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(flagJSON)
	},
	RunE: runGenerate,
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Log in JSON format")
	RootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Generated artifact path (default: classifiers/classifiers.go)")
	RootCmd.PersistentFlags().StringVar(&flagPython, "python", "", "Python interpreter with trove_classifiers installed")
	RootCmd.PersistentFlags().StringVar(&flagSnapshot, "snapshot", "", "JSON snapshot file to read instead of invoking Python")

	RootCmd.AddCommand(CheckCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	defer logger.Cleanup()

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}

	snap, err := resolveSource(cfg).Fetch()
	if err != nil {
		return errors.Wrap(err, "fetching classifier data")
	}

	data, err := classifiergen.Generate(snap)
	if err != nil {
		return errors.Wrap(err, "generating classifiers")
	}

	output := resolveOutput(cfg)
	if err := classifiergen.WriteFile(output, data); err != nil {
		return errors.Wrapf(err, "writing %s", output)
	}

	fmt.Printf("✓ Generated %s (%d classifiers, trove-classifiers %s)\n",
		output, len(snap.Classifiers), snap.Version)
	return nil
}

// resolveSource picks the data source: a snapshot file when one is
// configured, the Python shim otherwise. Flags override config.
func resolveSource(cfg *config.Config) classifiergen.Source {
	snapshot := flagSnapshot
	if snapshot == "" {
		snapshot = cfg.Snapshot
	}
	if snapshot != "" {
		return classifiergen.FileSource{Path: snapshot}
	}

	interpreter := flagPython
	if interpreter == "" {
		interpreter = cfg.Python.Interpreter
	}
	return classifiergen.PythonSource{Interpreter: interpreter}
}

func resolveOutput(cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output
}
