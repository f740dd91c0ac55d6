// Package scan locates sequence motifs on both strands of a molecule,
// including matches that cross a circular origin. It backs the standalone
// feature-scanning operation and the restriction engine's site finding.
package scan

import (
	"fmt"
	"strings"

	"github.com/Mochibw/PrimerPioneer/core/seq"
)

// Pattern is one motif to search for. The pattern string may use IUPAC
// ambiguity codes; matching on the template side is exact.
type Pattern struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Pattern string `json:"pattern"`
}

// Options selects which patterns a scan runs.
type Options struct {
	Builtin bool
	Custom  []Pattern
}

// Site is a raw motif occurrence. Start is the 0-based plus-strand offset
// of the site's first base; wrap is implicit when Start+Length exceeds the
// molecule length.
type Site struct {
	Start  int // 0-based plus-strand offset of the site's first base
	Length int
	Strand seq.Strand
}

// Scan returns the record's pre-existing features, untouched and in their
// original order, followed by one feature per motif occurrence. A malformed
// pattern rejects the whole call before any scanning.
func Scan(rec seq.SequenceRecord, opts Options) ([]seq.Feature, error) {
	patterns := make([]Pattern, 0, len(builtinPatterns)+len(opts.Custom))
	if opts.Builtin {
		patterns = append(patterns, builtinPatterns...)
	}
	patterns = append(patterns, opts.Custom...)

	// Validate every pattern up front: the scan either runs in full or not
	// at all.
	normalized := make([]string, len(patterns))
	for i, p := range patterns {
		s, err := seq.Validate(fmt.Sprintf("pattern %q", p.Name), p.Pattern)
		if err != nil {
			return nil, err
		}
		normalized[i] = s
	}

	out := make([]seq.Feature, 0, len(rec.Features))
	out = append(out, rec.Features...)

	template := strings.ToUpper(rec.Sequence)
	for i, p := range patterns {
		for _, site := range FindSites(template, normalized[i], rec.Circular) {
			out = append(out, siteFeature(p, site, len(template)))
		}
	}
	return out, nil
}

func siteFeature(p Pattern, s Site, total int) seq.Feature {
	start := s.Start + 1
	end := (s.Start+s.Length-1)%total + 1
	return seq.Feature{
		Type:       p.Type,
		Start:      start,
		End:        end,
		Strand:     s.Strand,
		Qualifiers: map[string]string{"label": p.Name},
	}
}

// FindSites reports every occurrence of pattern on either strand of
// template, overlapping matches included. A palindromic pattern covers
// each span twice, once per strand. For circular templates the search
// window is extended by len(pattern)-1 bases so origin-crossing sites are
// found; their Start stays in 0..len(template)-1 and the match wraps
// implicitly.
func FindSites(template, pattern string, circular bool) []Site {
	total := len(template)
	m := len(pattern)
	if m == 0 || total == 0 || m > total {
		return nil
	}

	var sites []Site
	window := template
	if circular {
		window = template + template[:m-1]
	}
	for _, pos := range matchPositions(window, pattern) {
		sites = append(sites, Site{Start: pos, Length: m, Strand: seq.Plus})
	}

	rc := seq.RevComp(template)
	rcWindow := rc
	if circular {
		rcWindow = rc + rc[:m-1]
	}
	for _, pos := range matchPositions(rcWindow, pattern) {
		// Map the reverse-complement hit back to plus-strand numbering:
		// the site's first plus-strand base is total-(pos+m), modulo the
		// origin for wrapped hits.
		start := total - pos - m
		if start < 0 {
			start += total
		}
		sites = append(sites, Site{Start: start, Length: m, Strand: seq.Minus})
	}
	return sites
}

// matchPositions finds all 0-based starts where pattern matches window
// exactly under IUPAC expansion of the pattern side. Unambiguous patterns
// take the strings.Index jump path.
func matchPositions(window, pattern string) []int {
	m := len(pattern)
	if m == 0 || len(window) < m {
		return nil
	}

	if isUnambiguous(pattern) {
		var out []int
		for i := 0; ; {
			j := strings.Index(window[i:], pattern)
			if j < 0 {
				break
			}
			out = append(out, i+j)
			i += j + 1
		}
		return out
	}

	var out []int
scan:
	for pos := 0; pos+m <= len(window); pos++ {
		for j := 0; j < m; j++ {
			if !seq.BaseMatch(window[pos+j], pattern[j]) {
				continue scan
			}
		}
		out = append(out, pos)
	}
	return out
}

func isUnambiguous(p string) bool {
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c != 'A' && c != 'C' && c != 'G' && c != 'T' {
			return false
		}
	}
	return true
}
