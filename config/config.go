// Package config loads quality-loop scenarios from YAML files.
//
// A scenario names the loop kind, the injected flow and the machine setups;
// omitted fields keep the game defaults from package params:
//
//	kind: recycler-assembler
//	input: 100
//	assembler:
//	  prod_modules: 0
//	  qual_modules: 4
//	  keep_from: none
//	recycler:
//	  keep_from: legendary
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qualityloop/params"
)

// Loop kinds.
const (
	KindRecycler          = "recycler"
	KindCrusher           = "crusher"
	KindRecyclerAssembler = "recycler-assembler"
)

var (
	// ErrInvalidScenario indicates a scenario that failed validation.
	ErrInvalidScenario = errors.New("config: invalid scenario")

	// ErrRead indicates the scenario file could not be read or decoded.
	ErrRead = errors.New("config: cannot read scenario")
)

// Scenario is one loop evaluation.
type Scenario struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind" validate:"required,oneof=recycler crusher recycler-assembler"`

	// Input is the flow injected at normal quality (ingredients for the
	// composite loop). InputVector, when set, replaces it.
	Input       float64   `yaml:"input" validate:"gte=0"`
	InputVector []float64 `yaml:"input_vector" validate:"omitempty,len=5|len=10,dive,gte=0"`

	// Exact selects the closed-form solution instead of iteration
	// (recycler kind only).
	Exact bool `yaml:"exact"`

	// MaxIterations overrides the loop's iteration ceiling when > 0.
	MaxIterations int `yaml:"max_iterations" validate:"gte=0"`

	Recycler  params.Recycler        `yaml:"recycler"`
	Crusher   params.AsteroidCrusher `yaml:"crusher"`
	Assembler params.Assembler       `yaml:"assembler"`
}

// Default returns a recycler scenario with 1000 items and game defaults for
// every machine. The assembler caps productivity at +300%, as the assembler
// command does; set cap_productivity: false to lift it.
func Default() Scenario {
	assembler := params.DefaultAssembler(0, params.AssemblerSlots)
	assembler.CapProductivity = true

	return Scenario{
		Kind:      KindRecycler,
		Input:     1000,
		Recycler:  params.DefaultRecycler(),
		Crusher:   params.DefaultAsteroidCrusher(),
		Assembler: assembler,
	}
}

var scenarioValidate = validator.New()

// Validate checks the scenario's own fields. Machine parameters are checked
// when their rows are derived.
func (s Scenario) Validate() error {
	err := scenarioValidate.Struct(s)
	if err == nil {
		if s.Exact && s.Kind != KindRecycler {
			return fmt.Errorf("exact is only supported for %q: %w", KindRecycler, ErrInvalidScenario)
		}
		if s.InputVector != nil && s.Kind != KindRecyclerAssembler {
			return fmt.Errorf("input_vector is only supported for %q: %w", KindRecyclerAssembler, ErrInvalidScenario)
		}

		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%v: %w", err, ErrInvalidScenario)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}

	return fmt.Errorf("%s: %w", strings.Join(msgs, "; "), ErrInvalidScenario)
}

// Parse decodes YAML over Default() and validates the result.
// Unknown keys are rejected; an empty document yields Default().
func Parse(data []byte) (Scenario, error) {
	s := Default()
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Scenario{}, fmt.Errorf("%v: %w", err, ErrRead)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %v: %w", path, err, ErrRead)
	}
	s, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
