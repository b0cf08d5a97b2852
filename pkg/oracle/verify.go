package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/g711ref/g711ref/pkg/g711"
	"github.com/google/uuid"
)

type Direction string

const (
	DirectionEncode Direction = "encode"
	DirectionDecode Direction = "decode"
)

type Mismatch struct {
	Input    int `json:"input" yaml:"input"` // sample for encode, code for decode
	Expected int `json:"expected" yaml:"expected"`
	Actual   int `json:"actual" yaml:"actual"`
}

type Report struct {
	ID         string      `json:"id" yaml:"id"`
	Candidate  string      `json:"candidate" yaml:"candidate"`
	Law        g711.Law    `json:"law" yaml:"law"`
	Direction  Direction   `json:"direction" yaml:"direction"`
	Checked    int         `json:"checked" yaml:"checked"`
	Total      int         `json:"total" yaml:"total"` // mismatches count
	Mismatches []Mismatch  `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
	Expected   Fingerprint `json:"expected" yaml:"expected"`
	Actual     Fingerprint `json:"actual" yaml:"actual"`
	Error      string      `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r *Report) Passed() bool {
	return r.Error == "" && r.Total == 0
}

func (r *Report) add(limit, input, expected, actual int) {
	if r.Total < limit {
		r.Mismatches = append(r.Mismatches, Mismatch{Input: input, Expected: expected, Actual: actual})
	}
	r.Total++
}

func newReport(name string, law g711.Law, dir Direction) *Report {
	return &Report{ID: uuid.NewString(), Candidate: name, Law: law, Direction: dir}
}

// CompareEncode - check all 65536 samples, keep first limit mismatches
func CompareEncode(name string, law g711.Law, expected, actual *EncodeTable, limit int) *Report {
	r := newReport(name, law, DirectionEncode)
	for i := range expected {
		if expected[i] != actual[i] {
			r.add(limit, int(SampleAt(i)), int(expected[i]), int(actual[i]))
		}
	}
	r.Checked = len(expected)
	r.Expected = Sum(expected.Bytes())
	r.Actual = Sum(actual.Bytes())
	return r
}

// CompareDecode - check all 256 codes, keep first limit mismatches
func CompareDecode(name string, law g711.Law, expected, actual *DecodeTable, limit int) *Report {
	r := newReport(name, law, DirectionDecode)
	for i := range expected {
		if expected[i] != actual[i] {
			r.add(limit, i, int(expected[i]), int(actual[i]))
		}
	}
	r.Checked = len(expected)
	r.Expected = Sum(expected.Bytes())
	r.Actual = Sum(actual.Bytes())
	return r
}

// Candidate - codec under test, empty source skips direction
type Candidate struct {
	Name   string   `yaml:"-"`
	Law    g711.Law `yaml:"law"`
	Encode string   `yaml:"encode"`
	Decode string   `yaml:"decode"`
}

var ErrNoSource = errors.New("oracle: candidate without encode and decode source")

// Verify - one report per candidate direction, load errors go to report
func Verify(ctx context.Context, c *Candidate, limit int) ([]*Report, error) {
	if c.Encode == "" && c.Decode == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoSource, c.Name)
	}

	refEncode, refDecode, err := Reference(c.Law)
	if err != nil {
		return nil, err
	}

	var reports []*Report

	if c.Encode != "" {
		if table, err := ReadEncodeTable(ctx, c.Law, c.Encode); err != nil {
			r := newReport(c.Name, c.Law, DirectionEncode)
			r.Error = err.Error()
			reports = append(reports, r)
		} else {
			reports = append(reports, CompareEncode(c.Name, c.Law, refEncode, table, limit))
		}
	}

	if c.Decode != "" {
		if table, err := ReadDecodeTable(ctx, c.Law, c.Decode); err != nil {
			r := newReport(c.Name, c.Law, DirectionDecode)
			r.Error = err.Error()
			reports = append(reports, r)
		} else {
			reports = append(reports, CompareDecode(c.Name, c.Law, refDecode, table, limit))
		}
	}

	return reports, nil
}
