// Package harness runs compliance fixtures against the parser: small
// cases, each a source snippet with an optional wrapper
// template and an optional expected diagnostic count, compared against
// what internal/parser actually produces. The fixtures themselves live
// under testdata/harness/*.yaml.
package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	goyaml "github.com/goccy/go-yaml"
	"github.com/maruel/natural"

	"github.com/cwbudde/csharpfront/internal/parser"
)

// Case is one harness fixture. Source is either a whole compilation
// unit or, when Wrapper is non-empty, a fragment substituted into
// Wrapper's single "<HERE>" placeholder, e.g. "parsed as an expression
// inside class C { void M { var y = <HERE>; } }". Statement selects
// parse_statement over parse_file for fragments that are themselves a
// whole statement.
type Case struct {
	Name string `yaml:"name"`
	Source string `yaml:"source"`
	Wrapper string `yaml:"wrapper,omitempty"`
	Statement bool `yaml:"statement,omitempty"`
	ExpectDiagnostics *int `yaml:"expectDiagnostics,omitempty"`
	ExpectSuccess *bool `yaml:"expectSuccess,omitempty"`
}

type fixtureFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadDir reads every *.yaml/*.yml fixture file directly inside dir and
// returns their cases, naturally sorted by name so "case2" reports
// before "case10" — a stable, human-friendly order, not lexical sort.
func LoadDir(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var all []Case
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		var f fixtureFile
		if err := goyaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		all = append(all, f.Cases...)
	}
	sort.Slice(all, func(i, j int) bool {
		return natural.Less(all[i].Name, all[j].Name)
	})
	return all, nil
}

// Result is the outcome of running one Case through the parser: the
// harness's comparable property is (success/failure, diagnostic count),
// never the diagnostic text.
type Result struct {
	Name string
	Source string
	Success bool
	DiagnosticCount int
	ExpectDiagnostics *int
	ExpectSuccess *bool
	Pass bool
	FailureReason string
}

// Expand substitutes c.Source into c.Wrapper's "<HERE>" placeholder, or
// returns c.Source unchanged when there is no wrapper.
func (c Case) Expand() string {
	if c.Wrapper == "" {
		return c.Source
	}
	return strings.Replace(c.Wrapper, "<HERE>", c.Source, 1)
}

// Run parses every case and judges it against its expectations.
func Run(cases []Case) []Result {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		src := c.Expand()
		p := parser.New(src)

		var success bool
		if c.Statement {
			_, ok := p.ParseTopLevelStatement()
			success = ok && len(p.Errors()) == 0
		} else {
			p.ParseCompilationUnit()
			success = len(p.Errors()) == 0
		}

		r := Result{
			Name: c.Name,
			Source: src,
			Success: success,
			DiagnosticCount: p.DiagnosticCount(),
			ExpectDiagnostics: c.ExpectDiagnostics,
			ExpectSuccess: c.ExpectSuccess,
			Pass: true,
		}
		if c.ExpectSuccess != nil && *c.ExpectSuccess != success {
			r.Pass = false
			r.FailureReason = fmt.Sprintf("expected success=%v, got %v", *c.ExpectSuccess, success)
		}
		if c.ExpectDiagnostics != nil && *c.ExpectDiagnostics != r.DiagnosticCount {
			r.Pass = false
			if r.FailureReason != "" {
				r.FailureReason += "; "
			}
			r.FailureReason += fmt.Sprintf("expected %d diagnostics, got %d", *c.ExpectDiagnostics, r.DiagnosticCount)
		}
		results = append(results, r)
	}
	return results
}

// Summary tallies a Result slice into pass/fail counts for a report.
type Summary struct {
	Total int
	Passed int
	Failed int
}

func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Pass {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}
