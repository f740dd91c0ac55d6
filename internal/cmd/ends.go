package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mochibw/PrimerPioneer/core/endmod"
	"github.com/Mochibw/PrimerPioneer/core/frag"
	"github.com/Mochibw/PrimerPioneer/internal/output"
	"github.com/Mochibw/PrimerPioneer/internal/record"
)

func init() {
	repairCmd.Flags().StringVar(&endsOut, "out", "", "write the modified fragment to a JSON file")
	tailCmd.Flags().StringVar(&tailBase, "base", "A", "base to append (A or T)")
	tailCmd.Flags().IntVar(&tailLen, "n", 1, "number of bases to append")
	tailCmd.Flags().StringVar(&endsOut, "out", "", "write the modified fragment to a JSON file")
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(tailCmd)
}

var (
	endsOut  string
	tailBase string
	tailLen  int
)

var repairCmd = &cobra.Command{
	Use:   "repair <fragment.json>",
	Short: "Blunt a fragment by filling in 5' overhangs and chewing back 3' overhangs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := record.LoadFragment(args[0])
		if err != nil {
			return err
		}
		repaired, msg := endmod.Repair(f)
		return writeFragment(repaired, msg)
	},
}

var tailCmd = &cobra.Command{
	Use:   "tail <fragment.json>",
	Short: "Append a single-base 3' homopolymer tail to a blunt fragment",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly one fragment file, got %d", len(args))
		}
		f, err := record.LoadFragment(args[0])
		if err != nil {
			return err
		}
		var tailed frag.Fragment
		var msg string
		switch tailBase {
		case "A", "a":
			tailed, msg = endmod.ATail(f, tailLen)
		case "T", "t":
			tailed, msg = endmod.TTail(f, tailLen)
		default:
			return fmt.Errorf("unsupported tail base %q: must be A or T", tailBase)
		}
		return writeFragment(tailed, msg)
	},
}

func writeFragment(f frag.Fragment, msg string) error {
	if msg != "" {
		logger.Info(msg)
	}
	if endsOut != "" {
		if err := record.SaveFragment(f, endsOut); err != nil {
			return err
		}
		logger.Info("wrote fragment", "path", endsOut)
		return nil
	}
	if loadConfig().Format == output.FormatJSON {
		return output.WriteJSON(os.Stdout, f)
	}
	return output.WriteFragment(os.Stdout, f)
}
