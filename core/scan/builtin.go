package scan

// Feature types emitted by the builtin library.
const (
	TypeRestrictionSite = "restriction_site"
	TypePromoter        = "promoter"
	TypePolyASignal     = "polyA_signal"
)

// builtinPatterns is the fixed motif library scanned when Options.Builtin
// is set: common restriction sites, the T7 promoter, and the canonical
// polyadenylation signal. Extending it is a data change only.
var builtinPatterns = []Pattern{
	{Name: "EcoRI", Type: TypeRestrictionSite, Pattern: "GAATTC"},
	{Name: "BsaI", Type: TypeRestrictionSite, Pattern: "GGTCTC"},
	{Name: "BamHI", Type: TypeRestrictionSite, Pattern: "GGATCC"},
	{Name: "BglII", Type: TypeRestrictionSite, Pattern: "AGATCT"},
	{Name: "HindIII", Type: TypeRestrictionSite, Pattern: "AAGCTT"},
	{Name: "KpnI", Type: TypeRestrictionSite, Pattern: "GGTACC"},
	{Name: "NcoI", Type: TypeRestrictionSite, Pattern: "CCATGG"},
	{Name: "NdeI", Type: TypeRestrictionSite, Pattern: "CATATG"},
	{Name: "NheI", Type: TypeRestrictionSite, Pattern: "GCTAGC"},
	{Name: "NotI", Type: TypeRestrictionSite, Pattern: "GCGGCCGC"},
	{Name: "PacI", Type: TypeRestrictionSite, Pattern: "TTAATTAA"},
	{Name: "PstI", Type: TypeRestrictionSite, Pattern: "CTGCAG"},
	{Name: "SacI", Type: TypeRestrictionSite, Pattern: "GAGCTC"},
	{Name: "SalI", Type: TypeRestrictionSite, Pattern: "GTCGAC"},
	{Name: "SmaI", Type: TypeRestrictionSite, Pattern: "CCCGGG"},
	{Name: "XbaI", Type: TypeRestrictionSite, Pattern: "TCTAGA"},
	{Name: "XhoI", Type: TypeRestrictionSite, Pattern: "CTCGAG"},
	{Name: "AflII", Type: TypeRestrictionSite, Pattern: "CTTAAG"},
	{Name: "T7 Promoter", Type: TypePromoter, Pattern: "TAATACGACTCACTATAGGG"},
	{Name: "polyA Signal", Type: TypePolyASignal, Pattern: "AATAAA"},
}

// BuiltinPatterns returns a copy of the builtin motif library.
func BuiltinPatterns() []Pattern {
	out := make([]Pattern, len(builtinPatterns))
	copy(out, builtinPatterns)
	return out
}
