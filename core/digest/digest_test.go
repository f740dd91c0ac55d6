package digest

import (
	"errors"
	"strings"
	"testing"

	"github.com/Mochibw/PrimerPioneer/core/enzyme"
	"github.com/Mochibw/PrimerPioneer/core/frag"
	"github.com/Mochibw/PrimerPioneer/core/seq"
)

func mustRecord(t *testing.T, sequence string, circular bool) seq.SequenceRecord {
	t.Helper()
	rec, err := seq.NewRecord("r1", "test", sequence, circular)
	if err != nil {
		t.Fatal(err)
	}
	return rec
}

func totalLength(fs []frag.Fragment) int {
	sum := 0
	for _, f := range fs {
		sum += f.Length
	}
	return sum
}

func TestDigestEcoRILinear(t *testing.T) {
	rec := mustRecord(t, "GAATTCAAAAAAAAAAAAAA", false)
	res, err := Digest(rec, []string{"EcoRI"})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Cuts) != 1 || res.Cuts[0] != 1 {
		t.Fatalf("cuts = %v, want [1]", res.Cuts)
	}
	if len(res.Fragments) != 2 {
		t.Fatalf("want 2 fragments, got %d: %+v", len(res.Fragments), res.Fragments)
	}

	f1, f2 := res.Fragments[0], res.Fragments[1]
	if f1.Start != 1 || f1.End != 1 || f1.Length != 1 || f1.Sequence != "G" {
		t.Errorf("first fragment: %+v", f1)
	}
	if f2.Start != 2 || f2.End != 20 || f2.Length != 19 {
		t.Errorf("second fragment: %+v", f2)
	}
	if totalLength(res.Fragments) != rec.Length {
		t.Errorf("fragment lengths sum to %d, want %d", totalLength(res.Fragments), rec.Length)
	}

	// EcoRI leaves AATT 5'-overhangs facing each other across the cut.
	if f1.Overhang5.Kind != frag.Blunt {
		t.Errorf("left terminus must stay blunt: %+v", f1.Overhang5)
	}
	if f1.Overhang3.Kind != frag.FiveOverhang || f1.Overhang3.Seq != "AATT" {
		t.Errorf("f1 3' end: %+v, want 5_overhang AATT", f1.Overhang3)
	}
	if f2.Overhang5.Kind != frag.FiveOverhang || f2.Overhang5.Seq != "AATT" {
		t.Errorf("f2 5' end: %+v, want 5_overhang AATT", f2.Overhang5)
	}
	if !frag.Complementary(f1.Overhang3, f2.Overhang5) {
		t.Error("the two new ends must be able to re-ligate")
	}

	// The site touches the left terminus, so a proximity note is expected.
	found := false
	for _, msg := range res.Info {
		if strings.Contains(msg, "terminus") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing terminus-proximity note: %v", res.Info)
	}
}

func TestDigestCircularTwoSites(t *testing.T) {
	rec := mustRecord(t, "GAATTCGAATTC", true)
	res, err := Digest(rec, []string{"EcoRI"})
	if err != nil {
		t.Fatal(err)
	}

	// A circular molecule with c cuts yields exactly c fragments.
	if len(res.Cuts) != 2 || len(res.Fragments) != 2 {
		t.Fatalf("cuts %v fragments %d, want 2 and 2", res.Cuts, len(res.Fragments))
	}
	if totalLength(res.Fragments) != rec.Length {
		t.Errorf("fragment lengths sum to %d, want %d", totalLength(res.Fragments), rec.Length)
	}
	for _, f := range res.Fragments {
		if f.Length != 6 {
			t.Errorf("equal sites must yield equal fragments: %+v", f)
		}
		if f.Overhang5.Kind != frag.FiveOverhang || f.Overhang3.Kind != frag.FiveOverhang {
			t.Errorf("every circular fragment end is sticky here: %+v", f)
		}
	}
}

func TestDigestCircularSingleCut(t *testing.T) {
	rec := mustRecord(t, "GAATTCAAAAAA", true)
	res, err := Digest(rec, []string{"EcoRI"})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Fragments) != 1 {
		t.Fatalf("one cut on a circle must linearize, got %d fragments", len(res.Fragments))
	}
	f := res.Fragments[0]
	if f.Length != rec.Length {
		t.Errorf("linearized fragment length = %d, want %d", f.Length, rec.Length)
	}
	if f.Start != 2 || f.End != 1 {
		t.Errorf("fragment must open at the cut: %+v", f)
	}
	if !frag.Complementary(f.Overhang5, f.Overhang3) {
		t.Error("a self-religatable fragment must carry matching ends")
	}
}

func TestDigestNoSite(t *testing.T) {
	rec := mustRecord(t, "AAAAAAAAAAAA", false)
	res, err := Digest(rec, []string{"EcoRI"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Cuts) != 0 {
		t.Fatalf("cuts = %v, want none", res.Cuts)
	}
	if len(res.Fragments) != 1 {
		t.Fatalf("want the intact molecule back, got %d fragments", len(res.Fragments))
	}
	f := res.Fragments[0]
	if f.Start != 1 || f.End != rec.Length || f.Overhang5.Kind != frag.Blunt || f.Overhang3.Kind != frag.Blunt {
		t.Errorf("intact fragment: %+v", f)
	}
	if len(res.Info) == 0 || !strings.Contains(res.Info[0], "no recognition site") {
		t.Errorf("missing explanatory note: %v", res.Info)
	}
}

func TestDigestUnknownEnzyme(t *testing.T) {
	rec := mustRecord(t, "GAATTCAAAAAA", false)
	_, err := Digest(rec, []string{"EcoRI", "NoSuchEnzyme"})
	if err == nil {
		t.Fatal("expected an error")
	}
	var nf *enzyme.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want *enzyme.NotFoundError, got %T", err)
	}
}

func TestDigestMultiEnzymeOrderIndependent(t *testing.T) {
	rec := mustRecord(t, "AAAGAATTCAAAGGATCCAAA", false)

	a, err := Digest(rec, []string{"EcoRI", "BamHI"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Digest(rec, []string{"BamHI", "EcoRI"})
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Cuts) != 2 || a.Cuts[0] != 4 || a.Cuts[1] != 13 {
		t.Fatalf("cuts = %v, want [4 13]", a.Cuts)
	}
	if len(a.Fragments) != 3 || totalLength(a.Fragments) != rec.Length {
		t.Fatalf("fragments: %+v", a.Fragments)
	}

	if len(b.Cuts) != len(a.Cuts) {
		t.Fatal("cut count depends on enzyme order")
	}
	for i := range a.Cuts {
		if a.Cuts[i] != b.Cuts[i] {
			t.Fatalf("cut positions differ by order: %v vs %v", a.Cuts, b.Cuts)
		}
	}
	for i := range a.Fragments {
		if a.Fragments[i].Sequence != b.Fragments[i].Sequence {
			t.Fatalf("fragment %d differs by enzyme order", i)
		}
	}
}

func TestDigestBluntCutter(t *testing.T) {
	rec := mustRecord(t, "AAACCCGGGAAA", false)
	res, err := Digest(rec, []string{"SmaI"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Cuts) != 1 || res.Cuts[0] != 6 {
		t.Fatalf("cuts = %v, want [6]", res.Cuts)
	}
	for _, f := range res.Fragments {
		if f.Overhang5.Kind != frag.Blunt || f.Overhang3.Kind != frag.Blunt {
			t.Errorf("SmaI cuts blunt: %+v", f)
		}
	}
}

func TestSelect(t *testing.T) {
	rec := mustRecord(t, "AAAGAATTCAAAGGATCCAAA", false)
	res, err := Digest(rec, []string{"EcoRI", "BamHI"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Fragments) != 3 {
		t.Fatalf("setup: want 3 fragments, got %d", len(res.Fragments))
	}

	sel := Select(res, []int{2})
	if len(sel.Fragments) != 1 || sel.Fragments[0].ID != res.Fragments[1].ID {
		t.Fatalf("selected fragments: %+v", sel.Fragments)
	}
	if len(sel.Enzymes) != 2 || len(sel.Cuts) != 2 {
		t.Errorf("provenance must carry through: %+v", sel)
	}
	found := false
	for _, msg := range sel.Info {
		if strings.Contains(msg, "selected 1 of 3") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing selection note: %v", sel.Info)
	}

	// Selection must not disturb the source result.
	if len(res.Fragments) != 3 {
		t.Error("Select mutated its input")
	}
}

func TestSelectIgnoresOutOfRange(t *testing.T) {
	rec := mustRecord(t, "AAAGAATTCAAAAA", false)
	res, err := Digest(rec, []string{"EcoRI"})
	if err != nil {
		t.Fatal(err)
	}

	sel := Select(res, []int{1, 0, 99})
	if len(sel.Fragments) != 1 {
		t.Fatalf("want the one valid position kept, got %d", len(sel.Fragments))
	}
	found := false
	for _, msg := range sel.Info {
		if strings.Contains(msg, "out-of-range") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing out-of-range warning: %v", sel.Info)
	}
}

func TestDigestThreePrimeOverhang(t *testing.T) {
	rec := mustRecord(t, "AAAGGTACCAAAAA", false)
	res, err := Digest(rec, []string{"KpnI"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Fragments) != 2 {
		t.Fatalf("want 2 fragments: %+v", res.Fragments)
	}
	f1, f2 := res.Fragments[0], res.Fragments[1]
	if f1.Overhang3.Kind != frag.ThreeOverhang || f1.Overhang3.Seq != "GTAC" {
		t.Errorf("f1 3' end: %+v, want 3_overhang GTAC", f1.Overhang3)
	}
	if f2.Overhang5.Kind != frag.ThreeOverhang {
		t.Errorf("f2 5' end: %+v, want 3_overhang", f2.Overhang5)
	}
	if !frag.Complementary(f1.Overhang3, f2.Overhang5) {
		t.Error("KpnI ends must re-ligate")
	}
}
