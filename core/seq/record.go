// Package seq holds the value types and coordinate conventions shared by
// every simulation in the toolkit. Coordinates are 1-based and inclusive,
// strand is +1 (top) or -1 (bottom), and a feature or fragment on a circular
// molecule that crosses the origin is encoded with Start > End.
package seq

// Strand of a feature or match: +1 for the plus/top strand, -1 for minus.
type Strand int

const (
	Plus  Strand = 1
	Minus Strand = -1
)

// SequenceRecord is an immutable DNA molecule. It is constructed by
// collaborators (file import, upstream tools) and consumed read-only here.
type SequenceRecord struct {
	ID       string            `json:"id"`
	Name     string            `json:"name,omitempty"`
	Sequence string            `json:"sequence"`
	Length   int               `json:"length"`
	Circular bool              `json:"circular"`
	Features []Feature         `json:"features,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Feature is an annotated region of a molecule. Start > End denotes a
// region wrapping the circular origin; both stay within 1..Length.
type Feature struct {
	Type       string            `json:"type"`
	Start      int               `json:"start"`
	End        int               `json:"end"`
	Strand     Strand            `json:"strand"`
	Qualifiers map[string]string `json:"qualifiers,omitempty"`
}

// Primer is a designed or supplied oligo. Tm and GC refer to the annealing
// portion only; Start/End are 1-based plus-strand binding coordinates when
// the template is known.
type Primer struct {
	Name      string  `json:"name"`
	Sequence  string  `json:"sequence"`
	Tm        float64 `json:"tm"`
	GC        float64 `json:"gc"`
	Start     int     `json:"start,omitempty"`
	End       int     `json:"end,omitempty"`
	Direction string  `json:"direction"` // "F" | "R"
	Length    int     `json:"length"`
}

// SpanLength returns the number of bases covered by the 1-based inclusive
// span start..end on a molecule of length total, honoring origin wrap.
func SpanLength(start, end, total int, circular bool) int {
	if start <= end {
		return end - start + 1
	}
	if !circular {
		return 0
	}
	return (total - start + 1) + end
}

// SpanSequence extracts the bases of the span start..end, wrapping across
// the origin when start > end on a circular molecule.
func SpanSequence(sequence string, start, end int, circular bool) string {
	if start <= end {
		return sequence[start-1 : end]
	}
	if !circular {
		return ""
	}
	return sequence[start-1:] + sequence[:end]
}
