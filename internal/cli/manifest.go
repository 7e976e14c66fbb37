package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/spool"
	"github.com/aretw0/spool/pkg/domain"
	"github.com/aretw0/spool/pkg/registry"
)

// Manifest describes a batch of runs. It selects registered machines by
// name and sets per-run options; machine definitions themselves are
// never read from the file.
type Manifest struct {
	Runs []ManifestRun `yaml:"runs"`
}

// ManifestRun is one entry of a batch manifest.
type ManifestRun struct {
	// Name labels the run in the output. Defaults to the machine name.
	Name string `yaml:"name,omitempty"`

	Machine  string `yaml:"machine"`
	Input    string `yaml:"input"`
	MaxSteps int    `yaml:"max_steps,omitempty"`
}

// BatchResult pairs a manifest entry with its run result.
type BatchResult struct {
	Name    string         `json:"name"`
	Machine string         `json:"machine"`
	Input   string         `json:"input"`
	Result  *domain.Result `json:"result"`
}

// LoadManifest reads and validates a batch manifest from a YAML file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: parsing %s: %w", path, err)
	}

	if len(m.Runs) == 0 {
		return nil, fmt.Errorf("manifest: %s declares no runs", path)
	}
	for i, run := range m.Runs {
		if run.Machine == "" {
			return nil, fmt.Errorf("manifest: run %d is missing a machine name", i)
		}
		if run.MaxSteps < 0 {
			return nil, fmt.Errorf("manifest: run %d has a negative max_steps", i)
		}
	}

	return &m, nil
}

// ExecuteBatch runs every manifest entry in order and prints the
// results, as a JSON array when jsonOut is set.
func ExecuteBatch(ctx context.Context, reg *registry.Registry, manifest *Manifest, jsonOut, debug bool) error {
	logger := createLogger(debug)

	results := make([]BatchResult, 0, len(manifest.Runs))
	for _, run := range manifest.Runs {
		m, err := reg.Get(run.Machine)
		if err != nil {
			return fmt.Errorf("batch: %w", err)
		}

		eng, err := spool.New(m, spool.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("batch: %w", err)
		}

		name := run.Name
		if name == "" {
			name = run.Machine
		}
		results = append(results, BatchResult{
			Name:    name,
			Machine: run.Machine,
			Input:   run.Input,
			Result:  eng.Run(ctx, run.Input, spool.WithStepLimit(run.MaxSteps)),
		})
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		verdict := "not accepted"
		if r.Result.Accepted {
			verdict = "accepted"
		}
		fmt.Printf("%-20s %-12s %6d steps  %s\n", r.Name, verdict, r.Result.Steps, r.Result.Tape)
	}
	return nil
}
