// Package workload loads job specs from YAML (or JSON) files and generates
// seeded synthetic job lists for the planner.
package workload

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/batch-planner/planner"
)

// CurrentVersion is the job spec format version written by this package.
const CurrentVersion = "1"

var validVersions = map[string]bool{"": true, "1": true}

// JobSpec is the top-level job file.
// Loaded from YAML via LoadJobSpec(path).
type JobSpec struct {
	Version   string               `yaml:"version"`
	Printer   *planner.Constraints `yaml:"printer,omitempty"` // nil = constraints come from elsewhere
	Jobs      []planner.Job        `yaml:"jobs,omitempty"`
	Generator *GeneratorSpec       `yaml:"generator,omitempty"`
}

// LoadJobSpec reads and parses a job spec file.
// Unknown fields are rejected so typos surface as errors. Jobs without an id
// are assigned a random UUID.
func LoadJobSpec(path string) (*JobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job spec: %w", err)
	}
	return ParseJobSpec(data)
}

// ParseJobSpec parses job spec bytes with the same rules as LoadJobSpec.
func ParseJobSpec(data []byte) (*JobSpec, error) {
	var spec JobSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing job spec: %w", err)
	}
	if spec.Version == "" {
		spec.Version = CurrentVersion
	}
	assignMissingIDs(spec.Jobs)
	return &spec, nil
}

func assignMissingIDs(jobs []planner.Job) {
	for i := range jobs {
		if jobs[i].ID == "" {
			jobs[i].ID = uuid.NewString()
			logrus.Debugf("jobs[%d] has no id, assigned %s", i, jobs[i].ID)
		}
	}
}

// Validate checks that the spec is usable.
func (s *JobSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unknown job spec version %q; valid: %s", s.Version, CurrentVersion)
	}
	if len(s.Jobs) == 0 && s.Generator == nil {
		return fmt.Errorf("at least one job or a generator section required")
	}
	if s.Printer != nil {
		if err := s.Printer.Validate(); err != nil {
			return fmt.Errorf("printer: %w", err)
		}
	}
	if s.Generator != nil {
		if err := s.Generator.Validate(); err != nil {
			return fmt.Errorf("generator: %w", err)
		}
	}
	return planner.ValidateJobs(s.Jobs)
}

// Resolve returns the explicit jobs followed by any generated jobs.
func (s *JobSpec) Resolve() ([]planner.Job, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	jobs := append([]planner.Job(nil), s.Jobs...)
	if s.Generator != nil {
		generated, err := GenerateJobs(*s.Generator)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, generated...)
	}
	if err := planner.ValidateJobs(jobs); err != nil {
		return nil, fmt.Errorf("resolved jobs: %w", err)
	}
	return jobs, nil
}

// MarshalJobSpec renders the spec as YAML.
func MarshalJobSpec(spec *JobSpec) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(spec); err != nil {
		return nil, fmt.Errorf("encoding job spec: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding job spec: %w", err)
	}
	return buf.Bytes(), nil
}
