// Package scenario loads PVA scenarios from YAML files and turns them into
// population values.
//
// A scenario names the life stages and carries the initial vector, the
// projection matrix (rows = destination stage) and the number of steps:
//
//	name: loggerhead
//	stages: [hatchling, juvenile, adult]
//	initial: [40, 20, 100]
//	matrix:
//	  - [0, 0, 0.1]
//	  - [0.6, 0.8, 0]
//	  - [0, 0.8, 0.95]
//	iterations: 8
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/ecolysis/population"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a scenario fails validation.
var ErrInvalid = errors.New("scenario: invalid")

// Scenario is a deterministic PVA setup.
type Scenario struct {
	// Name is a free-form label used in logs.
	Name string `json:"name" yaml:"name"`

	// Stages optionally names each life stage; when set its length must
	// match Initial.
	Stages []string `json:"stages,omitempty" yaml:"stages,omitempty"`

	// Initial is the population of each stage at time 0.
	Initial []float64 `json:"initial" yaml:"initial"`

	// Matrix holds the projection rates, one row per destination stage.
	Matrix [][]float64 `json:"matrix" yaml:"matrix"`

	// Iterations is the number of projection steps.
	Iterations int `json:"iterations" yaml:"iterations"`

	// Mode is "deterministic" (default) or "stochastic".
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML and validates the result. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the fields the population package does not: stage names,
// a non-empty initial vector, the iteration count and the mode name.
// Matrix shape is left to population.Build.
func (s *Scenario) Validate() error {
	if len(s.Initial) == 0 {
		return fmt.Errorf("%w: initial vector is empty", ErrInvalid)
	}
	if len(s.Stages) > 0 && len(s.Stages) != len(s.Initial) {
		return fmt.Errorf("%w: %d stage names for %d initial values", ErrInvalid, len(s.Stages), len(s.Initial))
	}
	if s.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be >= 0, got %d", ErrInvalid, s.Iterations)
	}
	if _, err := s.ProjectionMode(); err != nil {
		return err
	}
	return nil
}

// ProjectionMode maps Mode onto population.Mode. Empty means deterministic.
func (s *Scenario) ProjectionMode() (population.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s.Mode)) {
	case "", "deterministic":
		return population.Deterministic, nil
	case "stochastic":
		return population.Stochastic, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalid, s.Mode)
	}
}

// StageNames returns Stages, or "stage0".."stageN-1" when none are given.
func (s *Scenario) StageNames() []string {
	if len(s.Stages) > 0 {
		out := make([]string, len(s.Stages))
		copy(out, s.Stages)
		return out
	}
	out := make([]string, len(s.Initial))
	for i := range out {
		out[i] = fmt.Sprintf("stage%d", i)
	}
	return out
}

// Population builds the projection matrix and the validated population.
// Shape and dimension errors are the population package sentinels.
func (s *Scenario) Population() (*population.Population, error) {
	m, err := population.Build(s.Matrix)
	if err != nil {
		return nil, err
	}
	return population.New(population.NewStageVector(s.Initial), m)
}

// Run builds the population and projects it in the scenario's mode.
func (s *Scenario) Run() (population.Series, error) {
	mode, err := s.ProjectionMode()
	if err != nil {
		return population.Series{}, err
	}
	p, err := s.Population()
	if err != nil {
		return population.Series{}, err
	}
	return p.Run(mode, s.Iterations)
}

// Marshal encodes s as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
