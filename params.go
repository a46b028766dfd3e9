// seehuhn.de/go/lsys - generative L-system line art
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lsys

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/geom/vec"
)

// CreatedLayout is the time format used in comments and file names.
const CreatedLayout = "2006-01-02 15:04:05"

// paramsFile is the on-disk form of [Params].  The key names follow the
// parameter dictionary of the earlier scripts.
type paramsFile struct {
	Title        string            `toml:"TITLE"`
	N            int               `toml:"N"`
	Axiom        string            `toml:"AXIOM"`
	Rules        map[string]string `toml:"RULES"`
	InitialAngle float64           `toml:"INITIAL_ANGLE"`
	RotateAngle  float64           `toml:"ROTATE_ANGLE"`
	LineLength   float64           `toml:"LINE_LENGTH"`
	StartPos     []float64         `toml:"START_POS"`
	Created      time.Time         `toml:"CREATED"`
}

// grammarKey holds the fields which determine the drawing.
type grammarKey struct {
	N            int               `toml:"N"`
	Axiom        string            `toml:"AXIOM"`
	Rules        map[string]string `toml:"RULES"`
	InitialAngle float64           `toml:"INITIAL_ANGLE"`
	RotateAngle  float64           `toml:"ROTATE_ANGLE"`
	LineLength   float64           `toml:"LINE_LENGTH"`
	StartPos     []float64         `toml:"START_POS"`
}

// Fingerprint returns a content identifier (CIDv1, sha2-256) of the
// grammar and turtle settings.  Title and creation time do not contribute,
// so two parameter sets with the same fingerprint draw the same picture.
func (p *Params) Fingerprint() (string, error) {
	data, err := toml.Marshal(grammarKey{
		N:            p.Depth,
		Axiom:        p.Axiom.String(),
		Rules:        p.Rules.Map(),
		InitialAngle: p.InitialAngle,
		RotateAngle:  p.TurnAngle,
		LineLength:   p.LineLength,
		StartPos:     []float64{p.Start.X, p.Start.Y},
	})
	if err != nil {
		return "", err
	}
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return cid.NewCidV1(cid.Raw, sum).String(), nil
}

// ShortFingerprint returns the last n characters of the fingerprint,
// which is enough to tell drawings apart in file names.
func (p *Params) ShortFingerprint(n int) (string, error) {
	fp, err := p.Fingerprint()
	if err != nil {
		return "", err
	}
	if n < len(fp) {
		fp = fp[len(fp)-n:]
	}
	return fp, nil
}

// Entry is a single key/value line of the provenance comment.
type Entry struct {
	Key   string
	Value string
}

// Entries lists the parameters in a fixed order for the output comment.
// The rules are given in their dictionary form, without escaping.
func (p *Params) Entries() []Entry {
	return []Entry{
		{"TITLE", p.Title},
		{"N", fmt.Sprint(p.Depth)},
		{"AXIOM", p.Axiom.String()},
		{"RULES", p.Rules.String()},
		{"INITIAL_ANGLE", fmt.Sprint(p.InitialAngle)},
		{"ROTATE_ANGLE", fmt.Sprint(p.TurnAngle)},
		{"LINE_LENGTH", fmt.Sprint(p.LineLength)},
		{"START_POS", fmt.Sprintf("(%v, %v)", p.Start.X, p.Start.Y)},
		{"CREATED", p.Created.Format(CreatedLayout)},
	}
}

// WriteTo writes the parameters in TOML format.
func (p *Params) WriteTo(w io.Writer) (int64, error) {
	data, err := toml.Marshal(paramsFile{
		Title:        p.Title,
		N:            p.Depth,
		Axiom:        p.Axiom.String(),
		Rules:        p.Rules.Map(),
		InitialAngle: p.InitialAngle,
		RotateAngle:  p.TurnAngle,
		LineLength:   p.LineLength,
		StartPos:     []float64{p.Start.X, p.Start.Y},
		Created:      p.Created,
	})
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// WriteParamsFile stores p in the named file.
func WriteParamsFile(name string, p *Params) error {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return err
	}
	return os.WriteFile(name, buf.Bytes(), 0o644)
}

// ReadParams reads parameters written by [Params.WriteTo].
func ReadParams(r io.Reader) (*Params, error) {
	var f paramsFile
	dec := toml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("lsys: reading parameters: %w", err)
	}
	if len(f.StartPos) != 2 {
		return nil, fmt.Errorf("lsys: START_POS needs two values, got %d", len(f.StartPos))
	}
	if f.N < 0 {
		return nil, fmt.Errorf("lsys: negative recursion depth %d", f.N)
	}

	axiom := ParseWord(f.Axiom)
	rules, err := ParseRules(axiom, f.Rules)
	if err != nil {
		return nil, err
	}
	return &Params{
		Title:        f.Title,
		Depth:        f.N,
		Axiom:        axiom,
		Rules:        rules,
		InitialAngle: f.InitialAngle,
		TurnAngle:    f.RotateAngle,
		LineLength:   f.LineLength,
		Start:        vec.Vec2{X: f.StartPos[0], Y: f.StartPos[1]},
		Created:      f.Created,
	}, nil
}

// ReadParamsFile reads parameters from the named file.
func ReadParamsFile(name string) (*Params, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadParams(f)
}
