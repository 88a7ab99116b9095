// Package evals provides an evaluation framework for testing MCP tool
// selection accuracy. It validates that LLMs pick the correct Wikia tool
// and extract proper arguments from natural language inputs, and that
// the suite files stay in sync with the registered tools.
package evals

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// ToolSelectionTest represents a single tool selection evaluation case
type ToolSelectionTest struct {
	ID           string         `json:"id"`
	Category     string         `json:"category"`
	Input        string         `json:"input"`
	ExpectedTool string         `json:"expected_tool"`
	ExpectedArgs map[string]any `json:"expected_args"`
	NotTools     []string       `json:"not_tools"`
}

// ToolSelectionSuite contains all tool selection tests
type ToolSelectionSuite struct {
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Tests       []ToolSelectionTest `json:"tests"`
}

// ConfusionPairTest represents a single disambiguation test
type ConfusionPairTest struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Reason   string `json:"reason"`
}

// ConfusionPair represents a pair of tools that are commonly confused
type ConfusionPair struct {
	ID             string              `json:"id"`
	Tools          []string            `json:"tools"`
	Disambiguation string              `json:"disambiguation"`
	Tests          []ConfusionPairTest `json:"tests"`
}

// ConfusionPairSuite contains all confusion pair tests
type ConfusionPairSuite struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Pairs       []ConfusionPair `json:"pairs"`
}

// ArgumentTest represents a single argument correctness test
type ArgumentTest struct {
	ID            string         `json:"id"`
	Tool          string         `json:"tool"`
	Input         string         `json:"input"`
	RequiredArgs  []string       `json:"required_args"`
	ExpectedArgs  map[string]any `json:"expected_args"`
	ForbiddenArgs []string       `json:"forbidden_args"`
	ArgNotes      string         `json:"arg_notes,omitempty"`
}

// ValidationRules defines common conventions for tool arguments
type ValidationRules struct {
	QueryHandling   string `json:"query_handling"`
	IDHandling      string `json:"id_handling"`
	BooleanHandling string `json:"boolean_handling"`
	ArrayHandling   string `json:"array_handling"`
}

// ArgumentSuite contains all argument correctness tests
type ArgumentSuite struct {
	Name            string          `json:"name"`
	Version         string          `json:"version"`
	Description     string          `json:"description"`
	Tests           []ArgumentTest  `json:"tests"`
	ValidationRules ValidationRules `json:"validation_rules"`
}

// LoadToolSelectionSuite loads tool selection tests from a JSON file
func LoadToolSelectionSuite(path string) (*ToolSelectionSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var suite ToolSelectionSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	return &suite, nil
}

// LoadConfusionPairSuite loads confusion pair tests from a JSON file
func LoadConfusionPairSuite(path string) (*ConfusionPairSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var suite ConfusionPairSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	return &suite, nil
}

// LoadArgumentSuite loads argument correctness tests from a JSON file
func LoadArgumentSuite(path string) (*ArgumentSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var suite ArgumentSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	return &suite, nil
}

// LoadAllEvals loads all evaluation suites from a directory
func LoadAllEvals(dir string) (*ToolSelectionSuite, *ConfusionPairSuite, *ArgumentSuite, error) {
	toolSelection, err := LoadToolSelectionSuite(filepath.Join(dir, "tool_selection.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading tool selection: %w", err)
	}

	confusionPairs, err := LoadConfusionPairSuite(filepath.Join(dir, "confusion_pairs.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading confusion pairs: %w", err)
	}

	arguments, err := LoadArgumentSuite(filepath.Join(dir, "argument_correctness.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading arguments: %w", err)
	}

	return toolSelection, confusionPairs, arguments, nil
}

// KnownTools builds the lookup set the UnknownTools methods check
// references against.
func KnownTools(names []string) map[string]bool {
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}
	return known
}

// UnknownTools returns tool names referenced by the suite that are not in
// the known set, in order of first appearance. A non-empty result means
// the suite has drifted from the registered tools.
func (s *ToolSelectionSuite) UnknownTools(known map[string]bool) []string {
	var unknown []string
	seen := make(map[string]bool)
	report := func(name string) {
		if name != "" && !known[name] && !seen[name] {
			seen[name] = true
			unknown = append(unknown, name)
		}
	}

	for _, test := range s.Tests {
		report(test.ExpectedTool)
		for _, name := range test.NotTools {
			report(name)
		}
	}
	return unknown
}

// UnknownTools returns tool names referenced by the suite that are not in
// the known set, in order of first appearance.
func (s *ConfusionPairSuite) UnknownTools(known map[string]bool) []string {
	var unknown []string
	seen := make(map[string]bool)
	report := func(name string) {
		if name != "" && !known[name] && !seen[name] {
			seen[name] = true
			unknown = append(unknown, name)
		}
	}

	for _, pair := range s.Pairs {
		for _, name := range pair.Tools {
			report(name)
		}
		for _, test := range pair.Tests {
			report(test.Expected)
		}
	}
	return unknown
}

// UnknownTools returns tool names referenced by the suite that are not in
// the known set, in order of first appearance.
func (s *ArgumentSuite) UnknownTools(known map[string]bool) []string {
	var unknown []string
	seen := make(map[string]bool)

	for _, test := range s.Tests {
		if test.Tool != "" && !known[test.Tool] && !seen[test.Tool] {
			seen[test.Tool] = true
			unknown = append(unknown, test.Tool)
		}
	}
	return unknown
}
