// Package testutil provides shared test infrastructure for the planner.
// It holds the golden plan dataset types and assertion helpers used across
// planner/ and planner/workload/ test packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/golden_plans.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenJob mirrors planner.Job so this package stays free of planner imports.
type GoldenJob struct {
	ID        string  `json:"id"`
	Volume    float64 `json:"volume"`
	Priority  int     `json:"priority"`
	PrintTime int64   `json:"print_time"`
}

// GoldenConstraints mirrors planner.Constraints.
type GoldenConstraints struct {
	MaxVolume float64 `json:"max_volume"`
	MaxItems  int     `json:"max_items"`
}

// GoldenDiagnostic is an expected unschedulable job.
type GoldenDiagnostic struct {
	JobID  string `json:"job_id"`
	Reason string `json:"reason"`
}

// GoldenPlan is the expected outcome of a golden test case.
type GoldenPlan struct {
	PrintOrder    []string           `json:"print_order"`
	TotalTime     int64              `json:"total_time"`
	Batches       [][]string         `json:"batches"`
	Unschedulable []GoldenDiagnostic `json:"unschedulable"`
}

// GoldenTestCase represents a single test case from the golden dataset.
type GoldenTestCase struct {
	Name        string            `json:"name"`
	Jobs        []GoldenJob       `json:"jobs"`
	Constraints GoldenConstraints `json:"constraints"`
	Expected    GoldenPlan        `json:"expected"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: planner/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_plans.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("golden dataset has no test cases")
	}

	return &dataset
}
