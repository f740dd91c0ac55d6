package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mochibw/PrimerPioneer/core/design"
	"github.com/Mochibw/PrimerPioneer/internal/output"
	"github.com/Mochibw/PrimerPioneer/internal/record"
)

var designCmd = &cobra.Command{
	Use:   "design [record|sequence]",
	Short: "Design a primer pair for amplification or mutagenesis",
	Long: `Design primers against a template, given either a record file or a raw
sequence string. Amplify needs --start/--end (1-based inclusive) and
accepts optional non-template 5' tails; mutagenesis needs a single
--edit POS:BASE.`,
	Args: cobra.ExactArgs(1),
	RunE: runDesign,
}

func init() {
	designCmd.Flags().String("task", string(design.TaskAmplify), "task: amplify | mutagenesis")
	designCmd.Flags().Int("start", 0, "amplicon start (1-based inclusive)")
	designCmd.Flags().Int("end", 0, "amplicon end (1-based inclusive)")
	designCmd.Flags().String("fwd-tail", "", "non-template 5' tail for the forward primer")
	designCmd.Flags().String("rev-tail", "", "non-template 5' tail for the reverse primer")
	designCmd.Flags().StringArray("edit", nil, "point edit POS:BASE (mutagenesis)")
	rootCmd.AddCommand(designCmd)
}

func runDesign(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	template, err := resolveTemplate(args[0])
	if err != nil {
		return err
	}

	task, _ := cmd.Flags().GetString("task")
	intent := design.Intent{}
	intent.Start, _ = cmd.Flags().GetInt("start")
	intent.End, _ = cmd.Flags().GetInt("end")
	intent.FwdTail, _ = cmd.Flags().GetString("fwd-tail")
	intent.RevTail, _ = cmd.Flags().GetString("rev-tail")

	raw, _ := cmd.Flags().GetStringArray("edit")
	for _, r := range raw {
		e, err := parseEdit(r)
		if err != nil {
			return err
		}
		intent.Edits = append(intent.Edits, e)
	}

	res := design.Design(template, design.Task(task), intent)
	logger.Debug("design complete", "status", res.Status)
	if cfg.Format == output.FormatJSON {
		return output.WriteJSON(os.Stdout, res)
	}
	return output.WriteDesign(os.Stdout, res)
}

// resolveTemplate accepts a record file path or a raw sequence string.
func resolveTemplate(arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		rec, err := record.Load(arg)
		if err != nil {
			return "", err
		}
		return rec.Sequence, nil
	}
	return arg, nil
}

func parseEdit(s string) (design.Edit, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return design.Edit{}, fmt.Errorf("edit %q: want POS:BASE", s)
	}
	pos, err := strconv.Atoi(parts[0])
	if err != nil {
		return design.Edit{}, fmt.Errorf("edit %q: bad position: %w", s, err)
	}
	return design.Edit{Pos: pos, To: strings.ToUpper(parts[1])}, nil
}
