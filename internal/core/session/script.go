// Package session replays a scripted sequence of level operations, the way a
// user would drive a level by hand: move around, save points, measure, and
// finally check a model.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidStep = errors.New("invalid step")

type Op string

const (
	OpMove     Op = "move"
	OpSave     Op = "save"
	OpAngle    Op = "angle"
	OpLength   Op = "length"
	OpDistance Op = "distance"
	OpPosition Op = "position"
	OpCheck    Op = "check"
	OpDescribe Op = "describe"
)

// Script is a level dimension plus the steps to run against it. A zero Dim
// falls back to the runner's default.
type Script struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Dim   int    `json:"dim,omitempty" yaml:"dim,omitempty"`
	Steps []Step `json:"steps" yaml:"steps"`
}

type Step struct {
	Op     Op     `json:"op" yaml:"op"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Left   string `json:"left,omitempty" yaml:"left,omitempty"`
	Right  string `json:"right,omitempty" yaml:"right,omitempty"`
	Vector []int  `json:"vector,omitempty" yaml:"vector,omitempty"`
	Model  string `json:"model,omitempty" yaml:"model,omitempty"`
}

// LoadFile reads a YAML script from path.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// LoadYAML loads a script from a YAML reader.
func LoadYAML(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) Validate() error {
	if s.Dim < 0 {
		return fmt.Errorf("%w: negative dim %d", ErrInvalidStep, s.Dim)
	}
	for i, step := range s.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// Validate checks that the fields an op needs are present.
func (s Step) Validate() error {
	switch s.Op {
	case OpMove:
		if len(s.Vector) == 0 {
			return fmt.Errorf("%w: move needs a vector", ErrInvalidStep)
		}
	case OpSave, OpLength, OpDistance:
		if s.Name == "" {
			return fmt.Errorf("%w: %s needs a name", ErrInvalidStep, s.Op)
		}
	case OpAngle:
		if s.Left == "" || s.Right == "" {
			return fmt.Errorf("%w: angle needs left and right", ErrInvalidStep)
		}
	case OpCheck:
		if s.Model == "" {
			return fmt.Errorf("%w: check needs a model", ErrInvalidStep)
		}
	case OpPosition, OpDescribe:
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidStep, s.Op)
	}
	return nil
}
