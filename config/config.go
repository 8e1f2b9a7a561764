// Package config loads a search run description from YAML.
//
// A Run names either a predicate family (divided or sparse, with its size
// parameter k) or an explicit pair of predicate expressions f1 and f2, the
// subset sizes a and b, and the engine, output, checkpoint and logging
// settings. Load starts from Default, overlays the file, rejects unknown
// keys and validates the result.
//
//	family: sparse
//	k: 1
//	a: 3
//	b: 3
//	workers: 4
//	checkpoint:
//	  path: ./frontiers
//	log:
//	  level: debug
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/genramsey/extremal"
	"github.com/katalvlaran/genramsey/predicate"
)

var (
	// ErrParse is returned when a file is not valid YAML or names an
	// unknown key.
	ErrParse = errors.New("config: parse error")

	// ErrInvalid is returned when a Run fails validation.
	ErrInvalid = errors.New("config: invalid run")
)

// Families accepted in Run.Family.
const (
	FamilyDivided = "divided"
	FamilySparse  = "sparse"
)

// Output formats accepted in Run.Format.
const (
	FormatDOT    = "dot"
	FormatGraph6 = "graph6"
)

// Run describes one search.
type Run struct {
	Family string `yaml:"family" validate:"oneof=divided sparse"`
	K      int    `yaml:"k" validate:"gte=0"`
	A      int    `yaml:"a" validate:"gte=0"`
	B      int    `yaml:"b" validate:"gte=0"`

	// F1 and F2, when set, replace the family pair with parsed predicates.
	F1 string `yaml:"f1" validate:"required_with=F2"`
	F2 string `yaml:"f2" validate:"required_with=F1"`

	Workers  int    `yaml:"workers" validate:"gte=1"`
	MaxOrder int    `yaml:"max_order" validate:"gte=0,lte=64"`
	Quiet    bool   `yaml:"quiet"`
	Format   string `yaml:"format" validate:"oneof=dot graph6"`

	Checkpoint Checkpoint `yaml:"checkpoint"`
	Log        Log        `yaml:"log"`
}

// Checkpoint selects the frontier store. Both fields empty disables it.
type Checkpoint struct {
	Path     string `yaml:"path" validate:"excluded_with=InMemory"`
	InMemory bool   `yaml:"in_memory"`
}

// Enabled reports whether a store was requested.
func (c Checkpoint) Enabled() bool { return c.Path != "" || c.InMemory }

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

var validate = validator.New()

// Default returns the divided family with k=1, one worker per CPU, DOT
// output, no checkpoint store and warn-level text logs.
func Default() Run {
	return Run{
		Family:  FamilyDivided,
		K:       1,
		Workers: runtime.GOMAXPROCS(0),
		Format:  FormatDOT,
		Log:     Log{Level: "warn", Format: "text"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return Run{}, fmt.Errorf("config: Load %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads one YAML document over Default and validates the result.
// An empty document yields Default.
func Decode(r io.Reader) (Run, error) {
	run := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&run); err != nil && !errors.Is(err, io.EOF) {
		return Run{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := run.Validate(); err != nil {
		return Run{}, err
	}
	return run, nil
}

// Validate checks field ranges and that the predicates can be built.
func (r Run) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := r.Problem(); err != nil {
		return err
	}
	return nil
}

// Explicit reports whether the run uses f1/f2 instead of a family.
func (r Run) Explicit() bool { return r.F1 != "" }

// Problem builds the extremal problem the run describes.
func (r Run) Problem() (extremal.Problem, error) {
	var p1, p2 predicate.Predicate
	var err error
	switch {
	case r.Explicit():
		if p1, err = predicate.Parse(r.F1); err != nil {
			return extremal.Problem{}, fmt.Errorf("%w: f1: %v", ErrInvalid, err)
		}
		if p2, err = predicate.Parse(r.F2); err != nil {
			return extremal.Problem{}, fmt.Errorf("%w: f2: %v", ErrInvalid, err)
		}
	case r.Family == FamilySparse:
		p1, err = predicate.New(predicate.KindSparse, r.K)
		if err == nil {
			p2, err = predicate.New(predicate.KindSparseComplement, r.K)
		}
	default:
		p1, err = predicate.New(predicate.KindDivided, r.K)
		if err == nil {
			p2, err = predicate.New(predicate.KindDividedComplement, r.K)
		}
	}
	if err != nil {
		return extremal.Problem{}, fmt.Errorf("%w: %s k=%d: %v", ErrInvalid, r.Family, r.K, err)
	}
	return extremal.Problem{F1: p1, F2: p2, B1: r.A, B2: r.B}, nil
}
