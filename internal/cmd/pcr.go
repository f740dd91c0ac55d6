package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Mochibw/PrimerPioneer/core/pcr"
	"github.com/Mochibw/PrimerPioneer/internal/output"
	"github.com/Mochibw/PrimerPioneer/internal/record"
)

var pcrCmd = &cobra.Command{
	Use:   "pcr [record]",
	Short: "Simulate PCR amplification against a template",
	Long: `Simulate PCR of a primer pair against a template record. Every valid
forward/reverse binding combination yields one amplicon; primers may
carry non-template 5' tails, which become the product's overhangs.`,
	Args: cobra.ExactArgs(1),
	RunE: runPCR,
}

func init() {
	pcrCmd.Flags().String("forward", "", "forward primer (5'->3') [required]")
	pcrCmd.Flags().String("reverse", "", "reverse primer (5'->3') [required]")
	_ = pcrCmd.MarkFlagRequired("forward")
	_ = pcrCmd.MarkFlagRequired("reverse")
	pcrCmd.Flags().Int("min-anneal", 0, "minimum 3'-anchored exact-match length")
	_ = viper.BindPFlag("pcr.min-anneal-len", pcrCmd.Flags().Lookup("min-anneal"))
	pcrCmd.Flags().String("out", "", "write the primary amplicon as a record JSON file")
	rootCmd.AddCommand(pcrCmd)
}

func runPCR(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	rec, err := record.Load(args[0])
	if err != nil {
		return err
	}
	fwd, _ := cmd.Flags().GetString("forward")
	rev, _ := cmd.Flags().GetString("reverse")

	res, err := pcr.Simulate(rec, fwd, rev, cfg.PCR.MinAnnealLen)
	if err != nil {
		return err
	}
	logger.Debug("pcr complete", "amplicons", len(res.Amplicons))

	if out, _ := cmd.Flags().GetString("out"); out != "" && len(res.Amplicons) > 0 {
		product := pcr.Record(res.Amplicons[0], rec.Name)
		if err := record.Save(product, out); err != nil {
			return err
		}
		logger.Info("amplicon saved", "path", out, "length", product.Length)
	}

	if cfg.Format == output.FormatJSON {
		return output.WriteJSON(os.Stdout, res)
	}
	return output.WriteAmplicons(os.Stdout, res)
}
