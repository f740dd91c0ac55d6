package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mochibw/PrimerPioneer/core/scan"
	"github.com/Mochibw/PrimerPioneer/internal/output"
	"github.com/Mochibw/PrimerPioneer/internal/record"
)

var scanCmd = &cobra.Command{
	Use:   "scan [record]",
	Short: "Locate functional motifs on both strands of a sequence",
	Long: `Scan a sequence record for motifs: the builtin library of restriction
sites, the T7 promoter, and the polyA signal, plus any custom IUPAC
patterns given as NAME:TYPE:PATTERN. Pre-existing features are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Bool("no-builtin", false, "skip the builtin motif library")
	scanCmd.Flags().StringArray("pattern", nil, "custom pattern NAME:TYPE:PATTERN (repeatable)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	rec, err := record.Load(args[0])
	if err != nil {
		return err
	}

	noBuiltin, _ := cmd.Flags().GetBool("no-builtin")
	raw, _ := cmd.Flags().GetStringArray("pattern")
	custom := make([]scan.Pattern, 0, len(raw))
	for _, r := range raw {
		p, err := parsePattern(r)
		if err != nil {
			return err
		}
		custom = append(custom, p)
	}

	features, err := scan.Scan(rec, scan.Options{Builtin: !noBuiltin, Custom: custom})
	if err != nil {
		return err
	}

	logger.Debug("scan complete", "record", rec.ID, "features", len(features))
	if cfg.Format == output.FormatJSON {
		return output.WriteJSON(os.Stdout, features)
	}
	return output.WriteFeatures(os.Stdout, features)
}

func parsePattern(s string) (scan.Pattern, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return scan.Pattern{}, fmt.Errorf("pattern %q: want NAME:TYPE:PATTERN", s)
	}
	return scan.Pattern{Name: parts[0], Type: parts[1], Pattern: parts[2]}, nil
}
