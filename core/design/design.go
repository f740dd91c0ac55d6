// Package design solves primer pairs under fixed melting-temperature and
// length constraints. Outcomes are reported through a status/message/data
// envelope: biologically unsatisfiable requests (no length window reaches
// the Tm target) come back as error-status envelopes, never as faults.
package design

import (
	"fmt"

	"github.com/Mochibw/PrimerPioneer/core/pcr"
	"github.com/Mochibw/PrimerPioneer/core/seq"
)

// Fixed design constraints. The Tm window applies to the annealing portion
// only; a non-template 5' tail never counts toward Tm.
const (
	TmMin  = 58.0
	TmMax  = 64.0
	LenMin = 18
	LenMax = 28
)

// Task selects the design intent.
type Task string

const (
	TaskAmplify     Task = "amplify"
	TaskMutagenesis Task = "mutagenesis"
)

// Edit is one point substitution: template position Pos (1-based) becomes
// base To.
type Edit struct {
	Pos int    `json:"pos"`
	To  string `json:"to"`
}

// Intent carries the task-specific parameters. For amplify, Start/End are
// the 1-based inclusive amplicon bounds and the tails are optional
// non-template 5' payloads. For mutagenesis, Edits must hold exactly one
// point edit.
type Intent struct {
	Start   int    `json:"start,omitempty"`
	End     int    `json:"end,omitempty"`
	FwdTail string `json:"fwd_tail,omitempty"`
	RevTail string `json:"rev_tail,omitempty"`
	Edits   []Edit `json:"edits,omitempty"`
}

// Pair is the designed primer set. Mutagenesis produces a single primer,
// reported as Forward.
type Pair struct {
	Forward *seq.Primer `json:"forward,omitempty"`
	Reverse *seq.Primer `json:"reverse,omitempty"`
	Notes   string      `json:"notes,omitempty"`
}

// Result is the design envelope.
type Result struct {
	Status  string `json:"status"` // "ok" | "error"
	Message string `json:"message"`
	Data    *Pair  `json:"data,omitempty"`
}

func errorResult(format string, args ...any) Result {
	return Result{Status: "error", Message: fmt.Sprintf(format, args...)}
}

// Design runs one primer-design task against a raw template sequence.
func Design(template string, task Task, intent Intent) Result {
	tmpl, err := seq.Validate("template", template)
	if err != nil {
		return errorResult("%v", err)
	}
	switch task {
	case TaskAmplify:
		return amplify(tmpl, intent)
	case TaskMutagenesis:
		return mutagenesis(tmpl, intent)
	default:
		return errorResult("unknown task %q (want %q or %q)", task, TaskAmplify, TaskMutagenesis)
	}
}

func amplify(template string, intent Intent) Result {
	total := len(template)
	if intent.Start < 1 || intent.End < intent.Start || intent.End > total {
		return errorResult("amplicon needs 1 <= start <= end <= %d, got [%d,%d]", total, intent.Start, intent.End)
	}
	if intent.FwdTail != "" {
		tail, err := seq.Validate("fwd_tail", intent.FwdTail)
		if err != nil {
			return errorResult("%v", err)
		}
		intent.FwdTail = tail
	}
	if intent.RevTail != "" {
		tail, err := seq.Validate("rev_tail", intent.RevTail)
		if err != nil {
			return errorResult("%v", err)
		}
		intent.RevTail = tail
	}

	fwd, ok, closest := annealFrom(template, intent.Start, intent.End, true)
	if !ok {
		return errorResult("no forward anneal length in %d-%d nt reaches Tm %.0f-%.0f; closest achieved Tm %.1f",
			LenMin, LenMax, TmMin, TmMax, closest)
	}
	rev, ok, closest := annealFrom(template, intent.Start, intent.End, false)
	if !ok {
		return errorResult("no reverse anneal length in %d-%d nt reaches Tm %.0f-%.0f; closest achieved Tm %.1f",
			LenMin, LenMax, TmMin, TmMax, closest)
	}

	f := primerFor("FWD", intent.FwdTail, fwd.anneal, fwd.start, fwd.end, "F")
	r := primerFor("REV", intent.RevTail, rev.anneal, rev.start, rev.end, "R")
	return Result{
		Status:  "ok",
		Message: "primer design successful",
		Data: &Pair{
			Forward: &f,
			Reverse: &r,
			Notes:   fmt.Sprintf("amplify [%d,%d]", intent.Start, intent.End),
		},
	}
}

// candidate is a chosen annealing region on the template.
type candidate struct {
	anneal     string
	start, end int // 1-based plus-strand binding coordinates
}

// annealFrom walks anneal lengths from LenMin up, anchored at the amplicon
// boundary, and picks the first length whose Tm lands in the window. A
// later in-window length ending on G or C is preferred over an earlier one
// that does not (soft 3' clamp). Returns the closest achieved Tm when no
// length qualifies.
func annealFrom(template string, start, end int, forward bool) (candidate, bool, float64) {
	var first, clamped *candidate
	closest := 0.0
	bestGap := -1.0

	width := end - start + 1
	for n := LenMin; n <= LenMax && n <= width; n++ {
		var c candidate
		if forward {
			c = candidate{anneal: template[start-1 : start-1+n], start: start, end: start + n - 1}
		} else {
			c = candidate{anneal: seq.RevComp(template[end-n : end]), start: end - n + 1, end: end}
		}

		tm := pcr.AnnealTm(c.anneal)
		gap := tmGap(tm)
		if bestGap < 0 || gap < bestGap {
			bestGap = gap
			closest = tm
		}
		if gap > 0 {
			continue
		}
		if first == nil {
			cc := c
			first = &cc
		}
		if clamped == nil && gcClamp(c.anneal) {
			cc := c
			clamped = &cc
		}
		if clamped != nil {
			break
		}
	}

	switch {
	case clamped != nil:
		return *clamped, true, 0
	case first != nil:
		return *first, true, 0
	case bestGap < 0:
		// amplicon narrower than the minimum anneal length: report the Tm
		// of the widest anneal the window allows
		anneal := template[start-1 : end]
		if !forward {
			anneal = seq.RevComp(anneal)
		}
		return candidate{}, false, pcr.AnnealTm(anneal)
	default:
		return candidate{}, false, closest
	}
}

func mutagenesis(template string, intent Intent) Result {
	if len(intent.Edits) == 0 {
		return errorResult("mutagenesis needs exactly one point edit")
	}
	if len(intent.Edits) > 1 {
		return errorResult("multiple edits in one call are unsupported; request %d edits one at a time", len(intent.Edits))
	}
	e := intent.Edits[0]
	total := len(template)
	if e.Pos < 1 || e.Pos > total {
		return errorResult("edit position %d outside template (1..%d)", e.Pos, total)
	}
	to, err := seq.Validate("edit base", e.To)
	if err != nil || len(to) != 1 || !isConcrete(to[0]) {
		return errorResult("edit base must be one of A/C/G/T, got %q", e.To)
	}

	var first, clamped *candidate
	closest := 0.0
	bestGap := -1.0
	for n := LenMin; n <= LenMax; n++ {
		// center the edit: equal flanks, left one base shorter on odd growth
		offset := n / 2
		start0 := e.Pos - 1 - offset
		if start0 < 0 || start0+n > total {
			continue
		}
		anneal := []byte(template[start0 : start0+n])
		anneal[offset] = to[0]
		c := candidate{anneal: string(anneal), start: start0 + 1, end: start0 + n}

		tm := pcr.AnnealTm(c.anneal)
		gap := tmGap(tm)
		if bestGap < 0 || gap < bestGap {
			bestGap = gap
			closest = tm
		}
		if gap > 0 {
			continue
		}
		if first == nil {
			cc := c
			first = &cc
		}
		if clamped == nil && gcClamp(c.anneal) {
			cc := c
			clamped = &cc
		}
		if clamped != nil {
			break
		}
	}

	chosen := clamped
	if chosen == nil {
		chosen = first
	}
	if chosen == nil {
		return errorResult("no anneal length in %d-%d nt reaches Tm %.0f-%.0f around position %d; closest achieved Tm %.1f",
			LenMin, LenMax, TmMin, TmMax, e.Pos, closest)
	}

	p := primerFor("MUT_FWD", "", chosen.anneal, chosen.start, chosen.end, "F")
	return Result{
		Status:  "ok",
		Message: "primer design successful",
		Data: &Pair{
			Forward: &p,
			Notes:   fmt.Sprintf("point mutation at %d -> %s", e.Pos, to),
		},
	}
}

func primerFor(name, tail, anneal string, start, end int, dir string) seq.Primer {
	full := tail + anneal
	return seq.Primer{
		Name:      name,
		Sequence:  full,
		Tm:        pcr.AnnealTm(anneal),
		GC:        seq.GCFraction(anneal),
		Start:     start,
		End:       end,
		Direction: dir,
		Length:    len(full),
	}
}

// tmGap is the distance from tm to the target window, 0 when inside it.
func tmGap(tm float64) float64 {
	switch {
	case tm < TmMin:
		return TmMin - tm
	case tm > TmMax:
		return tm - TmMax
	default:
		return 0
	}
}

func gcClamp(anneal string) bool {
	if anneal == "" {
		return false
	}
	last := anneal[len(anneal)-1]
	return last == 'G' || last == 'C'
}

func isConcrete(b byte) bool {
	return b == 'A' || b == 'C' || b == 'G' || b == 'T'
}
