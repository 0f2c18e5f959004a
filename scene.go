// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package padkit

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Scene is a declarative layout of widgets, typically loaded from a
// YAML or TOML file. Style fields are carried through to the host
// renderer untouched; callbacks are attached after construction with
// the per-widget Set* methods.
type Scene struct {
	Joysticks []JoystickOptions `yaml:"joysticks" toml:"joysticks"`
	Dpads     []DpadOptions     `yaml:"dpads" toml:"dpads"`
	Sliders   []SliderOptions   `yaml:"sliders" toml:"sliders"`
	Buttons   []ButtonOptions   `yaml:"buttons" toml:"buttons"`
}

// OpenScene reads a [Scene] from the given file, selecting the format
// by extension: .toml for TOML, .yaml or .yml for YAML.
func OpenScene(filename string) (*Scene, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	sc := &Scene{}
	switch ext := filepath.Ext(filename); ext {
	case ".toml":
		err = toml.Unmarshal(b, sc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, sc)
	default:
		return nil, fmt.Errorf("%w: unsupported scene file extension %q", ErrConfig, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfig, filename, err)
	}
	return sc, nil
}

// SaveScene writes a [Scene] to the given file, selecting the format
// by extension the same way [OpenScene] does.
func SaveScene(sc *Scene, filename string) error {
	var b []byte
	var err error
	switch ext := filepath.Ext(filename); ext {
	case ".toml":
		b, err = toml.Marshal(sc)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(sc)
	default:
		return fmt.Errorf("%w: unsupported scene file extension %q", ErrConfig, ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// Build constructs every widget in the scene. It fails atomically on
// the first invalid entry: either all widgets are returned or none.
func (sc *Scene) Build() ([]Widget, error) {
	var ws []Widget
	for i := range sc.Joysticks {
		js, err := NewJoystick(sc.Joysticks[i])
		if err != nil {
			return nil, err
		}
		ws = append(ws, js)
	}
	for i := range sc.Dpads {
		dp, err := NewDpad(sc.Dpads[i])
		if err != nil {
			return nil, err
		}
		ws = append(ws, dp)
	}
	for i := range sc.Sliders {
		sr, err := NewSlider(sc.Sliders[i])
		if err != nil {
			return nil, err
		}
		ws = append(ws, sr)
	}
	for i := range sc.Buttons {
		bt, err := NewButton(sc.Buttons[i])
		if err != nil {
			return nil, err
		}
		ws = append(ws, bt)
	}
	return ws, nil
}
