// Package sheet loads sprite-sheet descriptions: a YAML spec naming the
// sheet image and the per-action frame table, and a builder that turns a
// spec into an anim.Catalog backed by a decoded, premultiplied buffer.
package sheet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec describes one sprite sheet: the image it draws from and the frame
// table for each action.
type Spec struct {
	Image string              `yaml:"image"`
	Clips map[string]ClipSpec `yaml:"clips"`
}

// ClipSpec describes one action's animation.
type ClipSpec struct {
	Loop   bool        `yaml:"loop"`
	Frames []FrameSpec `yaml:"frames"`
}

// FrameSpec is one source rectangle on the sheet plus how many ticks the
// frame is meant to hold. Duration defaults to 1 when omitted.
type FrameSpec struct {
	X        int `yaml:"x"`
	Y        int `yaml:"y"`
	W        int `yaml:"w"`
	H        int `yaml:"h"`
	Duration int `yaml:"duration"`
}

// ParseSpec unmarshals a sheet spec.
func ParseSpec(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("sheet: unmarshal spec: %w", err)
	}
	return &s, nil
}

// LoadSpec reads and parses a sheet spec file.
func LoadSpec(filename string) (*Spec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("sheet: load %s: %w", filename, err)
	}
	s, err := ParseSpec(data)
	if err != nil {
		return nil, fmt.Errorf("sheet: parse %s: %w", filename, err)
	}
	return s, nil
}
