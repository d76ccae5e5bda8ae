// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ahp/engine"
	"github.com/katalvlaran/ahp/group"
	"github.com/katalvlaran/ahp/pairwise"
)

// problem is the YAML input shared by every command.
type problem struct {
	Criteria     []string                  `yaml:"criteria"`
	Evaluators   []evaluator               `yaml:"evaluators"`
	Alternatives map[string]alternativeSet `yaml:"alternatives"`
}

type evaluator struct {
	ID        string              `yaml:"id"`
	Weight    float64             `yaml:"weight"`
	Judgments []pairwise.Judgment `yaml:"judgments"`
}

type alternativeSet struct {
	Labels    []string            `yaml:"labels"`
	Judgments []pairwise.Judgment `yaml:"judgments"`
}

var errNoEvaluators = errors.New("problem has no evaluators")

func loadProblem(path string) (*problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(p.Evaluators) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNoEvaluators)
	}

	return &p, nil
}

// matrices builds one comparison matrix per evaluator, in file order.
func (p *problem) matrices(e *engine.Engine) ([]*pairwise.Matrix, error) {
	out := make([]*pairwise.Matrix, len(p.Evaluators))
	for i, ev := range p.Evaluators {
		id := ev.ID
		if id == "" {
			id = fmt.Sprintf("evaluator-%d", i+1)
		}
		m, err := e.BuildMatrix(ev.Judgments, p.Criteria, id)
		if err != nil {
			return nil, fmt.Errorf("evaluator %s: %w", id, err)
		}
		out[i] = m
	}

	return out, nil
}

// weights returns the evaluator weights, or nil when none is set.
func (p *problem) weights() []float64 {
	out := make([]float64, len(p.Evaluators))
	weighted := false
	for i, ev := range p.Evaluators {
		out[i] = ev.Weight
		weighted = weighted || ev.Weight != 0
	}
	if !weighted {
		return nil
	}

	return out
}

// method resolves the aggregation method: name (flag) over config, with
// evaluator weights from the file when the method is weighted and the
// config gives none.
func (p *problem) method(a *app, name string) (group.Method, error) {
	if name == "" {
		name = a.cfg.Aggregation.Method
	}
	weights := a.cfg.Aggregation.Weights
	if len(weights) == 0 {
		weights = p.weights()
	}

	return group.ParseMethod(name, weights)
}

// groupMatrix returns the single evaluator's matrix or the aggregate of all.
func (p *problem) groupMatrix(a *app, methodName string) (*pairwise.Matrix, []*pairwise.Matrix, error) {
	ms, err := p.matrices(a.engine)
	if err != nil {
		return nil, nil, err
	}
	if len(ms) == 1 {
		return ms[0], ms, nil
	}
	method, err := p.method(a, methodName)
	if err != nil {
		return nil, nil, err
	}
	g, err := a.engine.Aggregate(ms, method)
	if err != nil {
		return nil, nil, err
	}

	return g, ms, nil
}

// alternativeMatrices builds one matrix per criterion from the alternatives section.
func (p *problem) alternativeMatrices(e *engine.Engine) (map[string]*pairwise.Matrix, error) {
	out := make(map[string]*pairwise.Matrix, len(p.Alternatives))
	for c, set := range p.Alternatives {
		m, err := e.BuildMatrix(set.Judgments, set.Labels, c)
		if err != nil {
			return nil, fmt.Errorf("alternatives for %s: %w", c, err)
		}
		out[c] = m
	}

	return out, nil
}
