package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pytrove/trove-classifiers/classifiergen"
	"github.com/pytrove/trove-classifiers/config"
	"github.com/pytrove/trove-classifiers/errors"
	"github.com/pytrove/trove-classifiers/logger"
)

// errOutOfDate marks a completed check whose verdict is "stale".
var errOutOfDate = errors.New("classifiers are out of date - rerun classifiergen to update")

// IsOutOfDate reports whether err is the stale-snapshot verdict, as opposed
// to a failure of the check itself. Callers use it to pick the exit code.
func IsOutOfDate(err error) bool {
	return err != nil && errors.Is(err, errOutOfDate)
}

// CheckCmd checks whether the committed snapshot matches the upstream data.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the generated snapshot is up to date",
	Long: `Check whether the committed classifiers package matches the classifier
data the configured source currently provides.

The snapshot is regenerated in memory and compared byte for byte with the
file on disk; nothing is written.

Exit codes:
  0 - Snapshot is up to date
  1 - Snapshot is out of date (diff shown)
  2 - Error during check

Examples:
  classifiergen check
  classifiergen check --snapshot export.json`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
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
	result, err := classifiergen.Check(output, data)
	if err != nil {
		return errors.Wrap(err, "comparing with existing snapshot")
	}

	switch {
	case result.UpToDate:
		pterm.Success.Printf("Classifiers are up to date (%s, trove-classifiers %s)\n",
			output, snap.Version)
		return nil

	case result.Missing:
		pterm.Warning.Printf("No generated snapshot at %s yet\n", output)
		return errOutOfDate

	default:
		pterm.Error.Printf("Classifiers are out of date (%s)\n", output)
		for _, line := range result.Removed {
			pterm.Printf("  %s\n", pterm.FgRed.Sprint("- "+line))
		}
		for _, line := range result.Added {
			pterm.Printf("  %s\n", pterm.FgGreen.Sprint("+ "+line))
		}
		return errOutOfDate
	}
}
