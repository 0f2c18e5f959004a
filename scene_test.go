// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package padkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneYAML = `
joysticks:
  - name: left-stick
    left: 20
    top: 200
    width: 150
    height: 150
    thumb_size: 50
    rotation: 45
    color: "#888"
dpads:
  - name: pad
    left: 300
    top: 200
    width: 120
    height: 120
    dead_zone: 0.3
sliders:
  - name: throttle
    left: 500
    top: 100
    width: 40
    height: 220
    axis: vertical
buttons:
  - name: fire
    left: 600
    top: 300
    width: 64
    height: 64
    verbose: true
`

const sceneTOML = `
[[joysticks]]
name = "left-stick"
left = 20.0
top = 200.0
width = 150.0
height = 150.0
thumb_size = 50.0
rotation = 45.0

[[sliders]]
name = "throttle"
left = 500.0
top = 100.0
width = 40.0
height = 220.0
axis = "horizontal"
`

func writeScene(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestOpenSceneYAML(t *testing.T) {
	sc, err := OpenScene(writeScene(t, "scene.yaml", sceneYAML))
	require.NoError(t, err)

	require.Len(t, sc.Joysticks, 1)
	js := sc.Joysticks[0]
	assert.Equal(t, "left-stick", js.Name)
	assert.Equal(t, float32(150), js.Width)
	assert.Equal(t, float32(50), js.ThumbSize)
	assert.Equal(t, float32(45), js.Rotation)
	assert.Equal(t, "#888", js.Color)

	require.Len(t, sc.Dpads, 1)
	require.NotNil(t, sc.Dpads[0].DeadZone)
	assert.Equal(t, float32(0.3), *sc.Dpads[0].DeadZone)

	require.Len(t, sc.Sliders, 1)
	assert.Equal(t, "vertical", sc.Sliders[0].Axis)

	require.Len(t, sc.Buttons, 1)
	assert.True(t, sc.Buttons[0].Verbose)

	ws, err := sc.Build()
	require.NoError(t, err)
	require.Len(t, ws, 4)
	assert.Equal(t, "left-stick", ws[0].WidgetName())
	assert.Equal(t, "fire", ws[3].WidgetName())
}

func TestOpenSceneTOML(t *testing.T) {
	sc, err := OpenScene(writeScene(t, "scene.toml", sceneTOML))
	require.NoError(t, err)

	require.Len(t, sc.Joysticks, 1)
	assert.Equal(t, float32(45), sc.Joysticks[0].Rotation)
	require.Len(t, sc.Sliders, 1)
	assert.Equal(t, "horizontal", sc.Sliders[0].Axis)

	ws, err := sc.Build()
	require.NoError(t, err)
	assert.Len(t, ws, 2)
}

func TestOpenSceneBadExtension(t *testing.T) {
	_, err := OpenScene(writeScene(t, "scene.json", "{}"))
	assert.ErrorIs(t, err, ErrConfig)
}

func TestOpenSceneBadContent(t *testing.T) {
	_, err := OpenScene(writeScene(t, "scene.yaml", "joysticks: {not: a list}"))
	assert.ErrorIs(t, err, ErrConfig)
}

func TestSceneBuildAtomic(t *testing.T) {
	sc := &Scene{
		Joysticks: []JoystickOptions{
			{Options: Options{Width: 100, Height: 100}},
		},
		Sliders: []SliderOptions{
			{Options: Options{Width: 40, Height: 200}, Axis: "diagonal"},
		},
	}
	ws, err := sc.Build()
	assert.ErrorIs(t, err, ErrConfig)
	assert.Nil(t, ws)
}

func TestSceneSaveRoundTrip(t *testing.T) {
	sc, err := OpenScene(writeScene(t, "scene.yaml", sceneYAML))
	require.NoError(t, err)

	fn := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, SaveScene(sc, fn))

	back, err := OpenScene(fn)
	require.NoError(t, err)
	assert.Equal(t, sc, back)
}
