// Package pcr simulates PCR amplification: it finds every place the two
// primers can anneal, joins every forward/reverse combination that is
// validly ordered for amplification, and synthesizes the resulting
// amplicons. Binding is exact-match only, anchored at the primer 3' end;
// a primer's unmatched 5' remainder is treated as a non-template tail and
// becomes an amplicon overhang.
package pcr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Mochibw/PrimerPioneer/core/frag"
	"github.com/Mochibw/PrimerPioneer/core/seq"
)

// DefaultMinAnneal is the 3'-anchored exact-match length used to call a
// binding site when the caller does not override it.
const DefaultMinAnneal = 15

// Amplicon is one synthesized product. Start/End are the 1-based template
// coordinates of the primer anneal span (Start > End when the product
// crosses a circular origin); Length counts the full product including
// non-template tails.
type Amplicon struct {
	frag.Fragment
	Forward seq.Primer `json:"forward_primer"`
	Reverse seq.Primer `json:"reverse_primer"`
}

// Result is the outcome of one simulation. Zero amplicons is a successful,
// explained outcome, never an error.
type Result struct {
	Amplicons []Amplicon `json:"amplicons"`
	Message   string     `json:"message"`
}

// binding is one anneal site in 0-based plus-strand coordinates. For a
// plus-strand binding the primer 3' end sits at the right edge and the
// tail hangs off the left; for a minus-strand binding the mirror holds.
type binding struct {
	start  int // first template base of the anneal region
	anneal int // annealed bases (>= the minimum anchor)
	tail   string
	full   string // complete primer 5'->3'
}

// Simulate runs PCR of the forward/reverse primer pair against the
// template. Primers may carry non-template 5' tails; minAnneal <= 0 falls
// back to DefaultMinAnneal.
func Simulate(rec seq.SequenceRecord, forward, reverse string, minAnneal int) (Result, error) {
	if minAnneal <= 0 {
		minAnneal = DefaultMinAnneal
	}
	template := strings.ToUpper(rec.Sequence)
	if template == "" {
		return Result{}, &seq.ValidationError{Field: "template", Msg: "empty sequence"}
	}
	fwd, err := seq.Validate("forward primer", forward)
	if err != nil {
		return Result{}, err
	}
	rev, err := seq.Validate("reverse primer", reverse)
	if err != nil {
		return Result{}, err
	}
	if len(fwd) < minAnneal || len(rev) < minAnneal {
		return Result{}, &seq.ValidationError{
			Field: "primers",
			Msg:   fmt.Sprintf("must be at least %d bases long", minAnneal),
		}
	}

	fwdPlus := plusBindings(template, fwd, minAnneal, rec.Circular)
	fwdMinus := minusBindings(template, fwd, minAnneal, rec.Circular)
	revPlus := plusBindings(template, rev, minAnneal, rec.Circular)
	revMinus := minusBindings(template, rev, minAnneal, rec.Circular)

	var out []Amplicon
	// forward primer extends rightward, reverse primer anneals downstream
	out = append(out, join(rec, template, fwdPlus, revMinus, false)...)
	// swapped orientation: the reverse primer drives the plus strand
	out = append(out, join(rec, template, revPlus, fwdMinus, true)...)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})

	res := Result{Amplicons: out}
	switch {
	case len(fwdPlus)+len(fwdMinus) == 0 && len(revPlus)+len(revMinus) == 0:
		res.Message = "no amplicon produced: neither primer bound the template"
	case len(out) == 0 && (len(fwdPlus)+len(fwdMinus) == 0 || len(revPlus)+len(revMinus) == 0):
		res.Message = "no amplicon produced: one primer did not bind the template"
	case len(out) == 0:
		res.Message = "no amplicon produced: no validly ordered primer binding combination"
	default:
		res.Message = fmt.Sprintf("PCR simulation completed: %d amplicon(s) synthesized", len(out))
	}
	return res, nil
}

// Record materializes an amplicon as a standalone linear SequenceRecord,
// named after the template it came from.
func Record(a Amplicon, templateName string) seq.SequenceRecord {
	return seq.SequenceRecord{
		ID:       a.ID,
		Name:     fmt.Sprintf("PCR product from %s", templateName),
		Sequence: a.Sequence,
		Length:   len(a.Sequence),
		Circular: false,
	}
}

// join pairs plus-strand bindings of the driving primer with minus-strand
// bindings of the closing primer and synthesizes one amplicon per valid
// ordering. swapped marks products whose plus strand is driven by the
// caller's reverse primer.
func join(rec seq.SequenceRecord, template string, plus, minus []binding, swapped bool) []Amplicon {
	total := len(template)
	var out []Amplicon
	for _, f := range plus {
		fEnd := f.start + f.anneal // exclusive, may exceed total on wrap
		for _, r := range minus {
			middle, ok := middleSpan(fEnd, r.start, total, rec.Circular)
			if !ok {
				continue
			}
			span := f.anneal + middle + r.anneal
			if span > total {
				continue // product would lap the whole circle
			}

			mid := midSequence(template, fEnd, middle)
			sequence := f.full + mid + seq.RevComp(r.full)

			start := f.start%total + 1
			end := (r.start+r.anneal-1)%total + 1

			o5, o3 := tailEnds(f.tail, r.tail)
			dir, cdir := "F", "R"
			if swapped {
				dir, cdir = "R", "F"
			}
			out = append(out, Amplicon{
				Fragment: frag.Fragment{
					ID:        uuid.NewString(),
					Start:     start,
					End:       end,
					Length:    len(sequence),
					Strand:    seq.Plus,
					Overhang5: o5,
					Overhang3: o3,
					Sequence:  sequence,
				},
				Forward: primerRecord(f, dir, total),
				Reverse: primerRecord(r, cdir, total),
			})
		}
	}
	return out
}

// middleSpan returns the template bases separating the two anneal regions.
// On a linear template the reverse site must lie at or right of the
// forward site's end; on a circular one any ordering wraps.
func middleSpan(fEnd, rStart, total int, circular bool) (int, bool) {
	if !circular {
		if rStart < fEnd {
			return 0, false
		}
		return rStart - fEnd, true
	}
	return mod(rStart-fEnd, total), true
}

func midSequence(template string, from, length int) string {
	total := len(template)
	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteByte(template[mod(from+i, total)])
	}
	return b.String()
}

// tailEnds converts the primers' non-template 5' tails into the amplicon's
// end classification. The forward tail protrudes at the product's left
// boundary (the amplicon is the downstream side there); the reverse tail
// at the right boundary (upstream side). Absent tails leave blunt ends.
func tailEnds(fwdTail, revTail string) (o5, o3 frag.End) {
	_, o5 = frag.Ends(len(fwdTail), fwdTail)
	o3, _ = frag.Ends(len(revTail), seq.RevComp(revTail))
	return o5, o3
}

func primerRecord(b binding, dir string, total int) seq.Primer {
	anneal := b.full[len(b.full)-b.anneal:]
	name := "FWD"
	if dir == "R" {
		name = "REV"
	}
	return seq.Primer{
		Name:      name,
		Sequence:  b.full,
		Tm:        AnnealTm(anneal),
		GC:        seq.GCFraction(anneal),
		Start:     b.start%total + 1,
		End:       (b.start+b.anneal-1)%total + 1,
		Direction: dir,
		Length:    len(b.full),
	}
}

// AnnealTm is the toolkit's documented melting-temperature approximation,
// computed over the annealing portion only:
//
//	Tm = 64.9 + 41*(gcCount - 16.4)/n
func AnnealTm(anneal string) float64 {
	n := len(anneal)
	if n == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < n; i++ {
		if anneal[i] == 'G' || anneal[i] == 'C' {
			gc++
		}
	}
	return 64.9 + 41*(float64(gc)-16.4)/float64(n)
}

// plusBindings finds every site where the primer's 3'-anchored suffix
// matches the plus strand exactly, then grows the anneal region 5'-ward as
// far as it keeps matching. Whatever is left of the primer is its tail.
func plusBindings(template, primer string, minAnneal int, circular bool) []binding {
	total := len(template)
	pl := len(primer)
	anchor := primer[pl-minAnneal:]

	last := total - minAnneal
	if circular {
		last = total - 1
	}

	var out []binding
scan:
	for s := 0; s <= last; s++ {
		for j := 0; j < minAnneal; j++ {
			if at(template, s+j, circular) != anchor[j] {
				continue scan
			}
		}
		// extend leftward past the anchor
		anneal := minAnneal
		for anneal < pl && anneal < total {
			i := s - (anneal - minAnneal) - 1
			if !circular && i < 0 {
				break
			}
			if at(template, i, circular) != primer[pl-anneal-1] {
				break
			}
			anneal++
		}
		start := s - (anneal - minAnneal)
		if circular {
			start = mod(start, total)
		}
		out = append(out, binding{
			start:  start,
			anneal: anneal,
			tail:   primer[:pl-anneal],
			full:   primer,
		})
	}
	return out
}

// minusBindings finds sites where the primer anneals to the plus strand
// (pointing leftward): the reverse complement of its 3' suffix appears on
// the plus strand, and the anneal region grows rightward.
func minusBindings(template, primer string, minAnneal int, circular bool) []binding {
	total := len(template)
	pl := len(primer)
	rc := seq.RevComp(primer) // rc[0] pairs the primer 3' terminus

	last := total - minAnneal
	if circular {
		last = total - 1
	}

	var out []binding
scan:
	for s := 0; s <= last; s++ {
		for j := 0; j < minAnneal; j++ {
			if at(template, s+j, circular) != rc[j] {
				continue scan
			}
		}
		anneal := minAnneal
		for anneal < pl && anneal < total {
			i := s + anneal
			if !circular && i >= total {
				break
			}
			if at(template, i, circular) != rc[anneal] {
				break
			}
			anneal++
		}
		out = append(out, binding{
			start:  s,
			anneal: anneal,
			tail:   primer[:pl-anneal],
			full:   primer,
		})
	}
	return out
}

func at(template string, i int, circular bool) byte {
	if circular {
		return template[mod(i, len(template))]
	}
	return template[i]
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
