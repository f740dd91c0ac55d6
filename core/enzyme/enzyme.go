// Package enzyme holds the builtin restriction enzyme table. The table is
// immutable and name-keyed; callers cannot construct specs of their own
// through the digestion operation, they can only name entries here.
package enzyme

import "fmt"

// Spec describes one restriction enzyme. CutTop and CutBottom are 0-based
// offsets into Site where the top and bottom strands are nicked; equal
// offsets cut blunt, CutTop < CutBottom leaves 5'-overhangs and
// CutTop > CutBottom leaves 3'-overhangs. StarActivity is carried as a
// flag only, relaxed-specificity cutting is not simulated.
type Spec struct {
	Name         string `json:"name"`
	Site         string `json:"site"`
	CutTop       int    `json:"cut_index_top"`
	CutBottom    int    `json:"cut_index_bottom"`
	StarActivity bool   `json:"star_activity"`
}

// NotFoundError reports an enzyme name missing from the builtin table.
type NotFoundError struct{ Name string }

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("enzyme %q not found in the builtin enzyme table", e.Name)
}

var table = map[string]Spec{
	"EcoRI":   {Name: "EcoRI", Site: "GAATTC", CutTop: 1, CutBottom: 5, StarActivity: true},
	"BamHI":   {Name: "BamHI", Site: "GGATCC", CutTop: 1, CutBottom: 5, StarActivity: true},
	"BglII":   {Name: "BglII", Site: "AGATCT", CutTop: 1, CutBottom: 5},
	"HindIII": {Name: "HindIII", Site: "AAGCTT", CutTop: 1, CutBottom: 5, StarActivity: true},
	"KpnI":    {Name: "KpnI", Site: "GGTACC", CutTop: 5, CutBottom: 1, StarActivity: true},
	"NcoI":    {Name: "NcoI", Site: "CCATGG", CutTop: 1, CutBottom: 5},
	"NdeI":    {Name: "NdeI", Site: "CATATG", CutTop: 2, CutBottom: 4},
	"NheI":    {Name: "NheI", Site: "GCTAGC", CutTop: 1, CutBottom: 5},
	"NotI":    {Name: "NotI", Site: "GCGGCCGC", CutTop: 2, CutBottom: 6},
	"PacI":    {Name: "PacI", Site: "TTAATTAA", CutTop: 5, CutBottom: 3},
	"PstI":    {Name: "PstI", Site: "CTGCAG", CutTop: 5, CutBottom: 1, StarActivity: true},
	// SacI cuts GAGCT^C / G^AGCTC, leaving a 4-nt 3'-overhang (AGCT).
	"SacI":    {Name: "SacI", Site: "GAGCTC", CutTop: 5, CutBottom: 1},
	"SalI":    {Name: "SalI", Site: "GTCGAC", CutTop: 1, CutBottom: 5, StarActivity: true},
	"SmaI":    {Name: "SmaI", Site: "CCCGGG", CutTop: 3, CutBottom: 3},
	"XbaI":    {Name: "XbaI", Site: "TCTAGA", CutTop: 1, CutBottom: 5},
	"XhoI":    {Name: "XhoI", Site: "CTCGAG", CutTop: 1, CutBottom: 5},
	"AflII":   {Name: "AflII", Site: "CTTAAG", CutTop: 1, CutBottom: 5},
}

// Lookup resolves name against the builtin table.
func Lookup(name string) (Spec, error) {
	s, ok := table[name]
	if !ok {
		return Spec{}, &NotFoundError{Name: name}
	}
	return s, nil
}

// Names returns every enzyme name in the builtin table, unordered.
func Names() []string {
	out := make([]string, 0, len(table))
	for n := range table {
		out = append(out, n)
	}
	return out
}
