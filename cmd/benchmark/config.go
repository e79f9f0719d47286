package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type scenario struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Iters  int    `yaml:"iters"`
}

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

var (
	ww = []int{1, 10, 100}
	hh = []int{1, 10, 100}
)

func defaultScenarios(iters int) []scenario {
	var out []scenario
	for _, w := range ww {
		for _, h := range hh {
			out = append(out, scenario{Width: w, Height: h, Iters: iters})
		}
	}
	return out
}

func loadScenarios(path string, iters int) ([]scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios: %w", err)
	}
	var f scenarioFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if s.Width < 1 || s.Height < 1 {
			return nil, fmt.Errorf("scenario %d (%q): width and height must be positive", i, s.Name)
		}
		if s.Iters < 1 {
			s.Iters = iters
		}
	}
	return f.Scenarios, nil
}

func (s scenario) label() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("propagate: %d * %d", s.Width, s.Height)
}
