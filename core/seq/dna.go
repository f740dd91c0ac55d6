package seq

import (
	"fmt"
	"strings"
	"unicode"
)

/* -------------------------- IUPAC lookup table -------------------------- */

// iupacMask maps a base to its nucleotide set: bit0=A bit1=C bit2=G bit3=T.
var iupacMask [256]byte

var complement [256]byte

func init() {
	set := func(c byte, bits byte) { iupacMask[c] = bits }
	set('A', 1)
	set('C', 2)
	set('G', 4)
	set('T', 8)
	set('R', 1|4)   // A/G
	set('Y', 2|8)   // C/T
	set('S', 2|4)   // C/G
	set('W', 1|8)   // A/T
	set('K', 4|8)   // G/T
	set('M', 1|2)   // A/C
	set('B', 2|4|8) // C/G/T
	set('D', 1|4|8) // A/G/T
	set('H', 1|2|8) // A/C/T
	set('V', 1|2|4) // A/C/G
	set('N', 1|2|4|8)

	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['R'] = 'Y'
	complement['Y'] = 'R'
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['K'] = 'M'
	complement['M'] = 'K'
	complement['B'] = 'V'
	complement['V'] = 'B'
	complement['D'] = 'H'
	complement['H'] = 'D'
	complement['N'] = 'N'
}

// BaseMatch reports whether pattern base p can pair with template base g.
// The template side must be a concrete A/C/G/T; an ambiguous template base
// is treated as a hard mismatch so N-blocks never produce spurious hits.
func BaseMatch(g, p byte) bool {
	if g != 'A' && g != 'C' && g != 'G' && g != 'T' {
		return false
	}
	return iupacMask[p]&iupacMask[g] != 0
}

// IsIUPAC reports whether b is a standard or ambiguity nucleotide code.
func IsIUPAC(b byte) bool { return iupacMask[b] != 0 }

// RevComp returns the reverse complement of an IUPAC DNA sequence.
// Unknown characters complement to N.
func RevComp(s string) string {
	n := len(s)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[s[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return string(out)
}

// GCFraction returns the G+C fraction of s (0 for an empty sequence).
func GCFraction(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 'G' || s[i] == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(s))
}

/* ------------------------------ validation ------------------------------ */

// ValidationError reports a structurally invalid input: a malformed
// sequence or pattern, or out-of-range coordinates. It is always raised
// before any computation happens.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Normalize strips whitespace and quotes and uppercases bases.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Validate normalizes raw and rejects any character outside the IUPAC
// alphabet. The field name is used in the error so callers can surface
// which input was malformed.
func Validate(field, raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", &ValidationError{Field: field, Msg: "empty sequence"}
	}
	for i := 0; i < len(s); i++ {
		if !IsIUPAC(s[i]) {
			return "", &ValidationError{
				Field: field,
				Msg:   fmt.Sprintf("invalid base %q at %d; allowed: A C G T R Y S W K M B D H V N", s[i], i+1),
			}
		}
	}
	return s, nil
}

// NewRecord builds a SequenceRecord after validating the sequence.
func NewRecord(id, name, sequence string, circular bool) (SequenceRecord, error) {
	s, err := Validate("sequence", sequence)
	if err != nil {
		return SequenceRecord{}, err
	}
	return SequenceRecord{
		ID:       id,
		Name:     name,
		Sequence: s,
		Length:   len(s),
		Circular: circular,
	}, nil
}

// ExpandIUPAC renders an IUPAC pattern as the explicit base sets it covers,
// e.g. "GRAT" -> "G[AG]AT". Used for messages only; matching goes through
// BaseMatch.
func ExpandIUPAC(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		bits := iupacMask[pattern[i]]
		switch bits {
		case 1:
			b.WriteByte('A')
		case 2:
			b.WriteByte('C')
		case 4:
			b.WriteByte('G')
		case 8:
			b.WriteByte('T')
		default:
			b.WriteByte('[')
			if bits&1 != 0 {
				b.WriteByte('A')
			}
			if bits&2 != 0 {
				b.WriteByte('C')
			}
			if bits&4 != 0 {
				b.WriteByte('G')
			}
			if bits&8 != 0 {
				b.WriteByte('T')
			}
			b.WriteByte(']')
		}
	}
	return b.String()
}
