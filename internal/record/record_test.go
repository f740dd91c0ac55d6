package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mochibw/PrimerPioneer/core/digest"
	"github.com/Mochibw/PrimerPioneer/core/frag"
	"github.com/Mochibw/PrimerPioneer/core/seq"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "plasmid.json", `{
		"id": "p1",
		"name": "pTest",
		"sequence": "gaattcacgt",
		"circular": true
	}`)

	rec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "p1", rec.ID)
	assert.Equal(t, "GAATTCACGT", rec.Sequence, "sequence is normalized on load")
	assert.Equal(t, 10, rec.Length, "length is restored from the sequence")
	assert.True(t, rec.Circular)
}

func TestLoadJSONAssignsID(t *testing.T) {
	path := writeFile(t, "r.json", `{"sequence": "ACGT"}`)
	rec, err := LoadJSON(path)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
}

func TestLoadJSONRejectsBadSequence(t *testing.T) {
	path := writeFile(t, "bad.json", `{"sequence": "ACGU"}`)
	_, err := LoadJSON(path)
	require.Error(t, err)
	var ve *seq.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestLoadFASTA(t *testing.T) {
	path := writeFile(t, "insert.fasta", ">my insert\nGAAT\nTCAC\n>second record\nAAAA\n")
	rec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "my insert", rec.Name)
	assert.Equal(t, "GAATTCAC", rec.Sequence, "only the first record is read")
	assert.False(t, rec.Circular, "FASTA imports are linear")
	assert.NotEmpty(t, rec.ID)
}

func TestLoadFASTAHeaderless(t *testing.T) {
	path := writeFile(t, "raw.fa", "ACGTACGT\n")
	rec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "raw", rec.Name, "name falls back to the file stem")
	assert.Equal(t, "ACGTACGT", rec.Sequence)
}

func TestLoadFASTAEmpty(t *testing.T) {
	path := writeFile(t, "empty.fasta", ">nothing here\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "no sequence data")
}

func TestSaveRoundTrip(t *testing.T) {
	rec, err := seq.NewRecord("p1", "pTest", "GAATTC", true)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "plasmid.json")
	require.NoError(t, Save(rec, path), "Save creates parent directories")

	got, err := LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestFragmentRoundTrip(t *testing.T) {
	f := frag.Fragment{
		ID:        "f1",
		Start:     2,
		End:       20,
		Length:    19,
		Strand:    seq.Plus,
		Overhang5: frag.End{Kind: frag.FiveOverhang, Seq: "AATT", Length: 4},
		Overhang3: frag.BluntEnd(),
		Sequence:  "AATTCAAAAAAAAAAAAAA",
	}
	path := filepath.Join(t.TempDir(), "frag.json")
	require.NoError(t, SaveFragment(f, path))

	got, err := LoadFragment(path)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestDigestRoundTrip(t *testing.T) {
	res := digest.Result{
		Enzymes: []string{"EcoRI"},
		Cuts:    []int{1},
		Fragments: []frag.Fragment{
			{ID: "f1", Start: 1, End: 1, Length: 1, Strand: seq.Plus,
				Overhang5: frag.BluntEnd(),
				Overhang3: frag.End{Kind: frag.FiveOverhang, Seq: "AATT", Length: 4},
				Sequence:  "G"},
		},
		Info: []string{"note"},
	}
	path := filepath.Join(t.TempDir(), "digest.json")
	require.NoError(t, SaveDigest(res, path))

	got, err := LoadDigest(path)
	require.NoError(t, err)
	assert.Equal(t, res, got)
}

func TestLoadDigestRejectsNonDigest(t *testing.T) {
	path := writeFile(t, "rec.json", `{"sequence": "ACGT"}`)
	_, err := LoadDigest(path)
	assert.ErrorContains(t, err, "not a digestion result")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
