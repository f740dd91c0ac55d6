package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mochibw/PrimerPioneer/core/design"
	"github.com/Mochibw/PrimerPioneer/core/digest"
	"github.com/Mochibw/PrimerPioneer/core/frag"
	"github.com/Mochibw/PrimerPioneer/core/seq"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]int{"cuts": 2}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got["cuts"])
}

func TestWriteFeatures(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFeatures(&buf, []seq.Feature{
		{Type: "restriction_site", Start: 3, End: 8, Strand: seq.Plus,
			Qualifiers: map[string]string{"label": "EcoRI"}},
		{Type: "promoter", Start: 12, End: 31, Strand: seq.Minus,
			Qualifiers: map[string]string{"label": "T7 Promoter"}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "EcoRI")
	assert.Contains(t, out, "T7 Promoter")
	assert.Contains(t, out, "+1")
	assert.Contains(t, out, "-1")
}

func TestWriteDigest(t *testing.T) {
	var buf bytes.Buffer
	res := digest.Result{
		Enzymes: []string{"EcoRI"},
		Cuts:    []int{1},
		Fragments: []frag.Fragment{
			{Start: 1, End: 1, Length: 1, Overhang5: frag.BluntEnd(),
				Overhang3: frag.End{Kind: frag.FiveOverhang, Seq: "AATT", Length: 4}},
			{Start: 2, End: 20, Length: 19,
				Overhang5: frag.End{Kind: frag.FiveOverhang, Seq: "AATT", Length: 4},
				Overhang3: frag.BluntEnd()},
		},
		Info: []string{"site for EcoRI at 1 is within 3 bases of a terminus and may cut inefficiently"},
	}
	require.NoError(t, WriteDigest(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "cuts: [1]")
	assert.Contains(t, out, "5_overhang:AATT")
	assert.Contains(t, out, "blunt")
	assert.Contains(t, out, "note: site for EcoRI")
}

func TestWriteDesign(t *testing.T) {
	var buf bytes.Buffer
	res := design.Result{
		Status:  "ok",
		Message: "primer design successful",
		Data: &design.Pair{
			Forward: &seq.Primer{Name: "FWD", Sequence: "ATGGCGTCC", Tm: 59.2,
				GC: 0.6, Start: 1, End: 9, Direction: "F"},
			Notes: "amplify [1,60]",
		},
	}
	require.NoError(t, WriteDesign(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "FWD")
	assert.Contains(t, out, "59.2")
	assert.Contains(t, out, "ok: primer design successful")
	assert.Contains(t, out, "notes: amplify [1,60]")
}

func TestWriteDesignErrorEnvelope(t *testing.T) {
	var buf bytes.Buffer
	res := design.Result{Status: "error", Message: "no anneal length reaches the Tm window"}
	require.NoError(t, WriteDesign(&buf, res))
	assert.Contains(t, buf.String(), "error: no anneal length")
	assert.NotContains(t, buf.String(), "PRIMER", "no table without data")
}

func TestWriteFragment(t *testing.T) {
	var buf bytes.Buffer
	f := frag.Fragment{Start: 2, End: 20, Length: 19,
		Overhang5: frag.End{Kind: frag.ThreeOverhang, Seq: "GTAC", Length: 4},
		Overhang3: frag.BluntEnd(),
		Sequence:  "AATTCAAAAAAAAAAAAAA"}
	require.NoError(t, WriteFragment(&buf, f))
	assert.Contains(t, buf.String(), "3_overhang:GTAC")
	assert.Contains(t, buf.String(), "sequence: AATTC")
}
