// Package record loads and persists SequenceRecord values. The core never
// touches storage; this package is the persistence collaborator the
// commands go through. Records live as JSON documents, and plain FASTA
// files can be imported as linear records.
package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Mochibw/PrimerPioneer/core/digest"
	"github.com/Mochibw/PrimerPioneer/core/frag"
	"github.com/Mochibw/PrimerPioneer/core/seq"
)

// Load reads a SequenceRecord from path. FASTA files (.fasta/.fa/.fna)
// are imported; everything else is parsed as a record JSON document.
func Load(path string) (seq.SequenceRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".fasta", ".fa", ".fna":
		return LoadFASTA(path)
	default:
		return LoadJSON(path)
	}
}

// LoadJSON reads a record JSON document, validating the sequence and
// restoring the length invariant.
func LoadJSON(path string) (seq.SequenceRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return seq.SequenceRecord{}, err
	}
	var rec seq.SequenceRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return seq.SequenceRecord{}, fmt.Errorf("parse %s: %w", path, err)
	}
	s, err := seq.Validate("sequence", rec.Sequence)
	if err != nil {
		return seq.SequenceRecord{}, fmt.Errorf("%s: %w", path, err)
	}
	rec.Sequence = s
	rec.Length = len(s)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return rec, nil
}

// LoadFASTA imports the first sequence of a FASTA file as a linear record.
func LoadFASTA(path string) (seq.SequenceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return seq.SequenceRecord{}, err
	}
	defer f.Close()

	var (
		name string
		b    strings.Builder
		seen bool
	)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 64*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if seen {
				break // first record only
			}
			seen = true
			name = strings.TrimSpace(strings.TrimPrefix(line, ">"))
			continue
		}
		b.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return seq.SequenceRecord{}, err
	}
	if b.Len() == 0 {
		return seq.SequenceRecord{}, fmt.Errorf("%s: no sequence data", path)
	}

	s, err := seq.Validate("sequence", b.String())
	if err != nil {
		return seq.SequenceRecord{}, fmt.Errorf("%s: %w", path, err)
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return seq.SequenceRecord{
		ID:       uuid.NewString(),
		Name:     name,
		Sequence: s,
		Length:   len(s),
	}, nil
}

// LoadFragment reads a digestion/PCR fragment JSON document.
func LoadFragment(path string) (frag.Fragment, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return frag.Fragment{}, err
	}
	var f frag.Fragment
	if err := json.Unmarshal(b, &f); err != nil {
		return frag.Fragment{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if f.Sequence != "" {
		s, err := seq.Validate("sequence", f.Sequence)
		if err != nil {
			return frag.Fragment{}, fmt.Errorf("%s: %w", path, err)
		}
		f.Sequence = s
	}
	return f, nil
}

// SaveFragment writes a fragment as an indented JSON document.
func SaveFragment(f frag.Fragment, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// LoadDigest reads a saved digestion result.
func LoadDigest(path string) (digest.Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return digest.Result{}, err
	}
	var res digest.Result
	if err := json.Unmarshal(b, &res); err != nil {
		return digest.Result{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if res.Fragments == nil {
		return digest.Result{}, fmt.Errorf("%s: not a digestion result (no fragments field)", path)
	}
	return res, nil
}

// SaveDigest writes a digestion result as an indented JSON document.
func SaveDigest(res digest.Result, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// Save writes a record as an indented JSON document, creating parent
// directories as needed.
func Save(rec seq.SequenceRecord, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
