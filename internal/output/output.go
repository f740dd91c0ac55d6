// Package output renders core results as text tables or JSON documents.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Mochibw/PrimerPioneer/core/design"
	"github.com/Mochibw/PrimerPioneer/core/digest"
	"github.com/Mochibw/PrimerPioneer/core/enzyme"
	"github.com/Mochibw/PrimerPioneer/core/frag"
	"github.com/Mochibw/PrimerPioneer/core/pcr"
	"github.com/Mochibw/PrimerPioneer/core/seq"
)

// Formats accepted by every command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// WriteJSON emits any result as an indented JSON document.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteFeatures prints one line per feature.
func WriteFeatures(w io.Writer, features []seq.Feature) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tSTART\tEND\tSTRAND\tLABEL")
	for _, f := range features {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%+d\t%s\n",
			f.Type, f.Start, f.End, f.Strand, f.Qualifiers["label"])
	}
	return tw.Flush()
}

// WriteDigest prints the cut list, fragment table, and any warnings.
func WriteDigest(w io.Writer, res digest.Result) error {
	fmt.Fprintf(w, "enzymes: %v\n", res.Enzymes)
	fmt.Fprintf(w, "cuts: %v\n", res.Cuts)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "FRAGMENT\tSTART\tEND\tLENGTH\t5'END\t3'END")
	for i, f := range res.Fragments {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%s\n",
			i+1, f.Start, f.End, f.Length, endLabel(f.Overhang5), endLabel(f.Overhang3))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, msg := range res.Info {
		fmt.Fprintf(w, "note: %s\n", msg)
	}
	return nil
}

// WriteAmplicons prints one line per product plus the status message.
func WriteAmplicons(w io.Writer, res pcr.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "AMPLICON\tSTART\tEND\tLENGTH\t5'END\t3'END")
	for i, a := range res.Amplicons {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%s\n",
			i+1, a.Start, a.End, a.Length, endLabel(a.Overhang5), endLabel(a.Overhang3))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, res.Message)
	return err
}

// WriteDesign prints the envelope: primers on success, the message always.
func WriteDesign(w io.Writer, res design.Result) error {
	if res.Data != nil {
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		fmt.Fprintln(tw, "PRIMER\tSEQUENCE\tTM\tGC%\tBINDS\tDIR")
		writePrimer(tw, res.Data.Forward)
		writePrimer(tw, res.Data.Reverse)
		if err := tw.Flush(); err != nil {
			return err
		}
		if res.Data.Notes != "" {
			fmt.Fprintf(w, "notes: %s\n", res.Data.Notes)
		}
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", res.Status, res.Message)
	return err
}

func writePrimer(w io.Writer, p *seq.Primer) {
	if p == nil {
		return
	}
	fmt.Fprintf(w, "%s\t%s\t%.1f\t%.0f\t%d-%d\t%s\n",
		p.Name, p.Sequence, p.Tm, p.GC*100, p.Start, p.End, p.Direction)
}

// WriteEnzymes prints the builtin enzyme table.
func WriteEnzymes(w io.Writer, specs []enzyme.Spec) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSITE\tCUT_TOP\tCUT_BOTTOM\tSTAR")
	for _, sp := range specs {
		star := ""
		if sp.StarActivity {
			star = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", sp.Name, sp.Site, sp.CutTop, sp.CutBottom, star)
	}
	return tw.Flush()
}

// WriteFragment prints a single fragment with its end chemistry.
func WriteFragment(w io.Writer, f frag.Fragment) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "START\tEND\tLENGTH\t5'END\t3'END")
	fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\n",
		f.Start, f.End, f.Length, endLabel(f.Overhang5), endLabel(f.Overhang3))
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "sequence: %s\n", f.Sequence)
	return err
}

func endLabel(e frag.End) string {
	if e.Kind == frag.Blunt {
		return "blunt"
	}
	return fmt.Sprintf("%s:%s", e.Kind, e.Seq)
}
