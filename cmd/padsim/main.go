// Copyright (c) 2026, The Padkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command padsim loads a scene of virtual controllers and replays a
// recorded gesture trace through them, printing every emitted signal.
// It is a headless stand-in for a touch surface, useful for checking
// scene files and traces without a browser.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/padkit/padkit"
	"github.com/padkit/padkit/logx"
	"github.com/padkit/padkit/replay"
)

var (
	traceFile string
	verbose   bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "padsim scene-file",
		Short: "replay a gesture trace through a padkit scene",
		Long: `padsim loads a scene file (YAML or TOML) describing joysticks,
dpads, sliders, and buttons, replays a recorded gesture trace through
them, and prints every signal the controllers emit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&traceFile, "trace", "t", "", "gesture trace file to replay (YAML)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-event controller traces")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(sceneFile string) error {
	logx.Init(os.Stderr)
	if verbose {
		logx.UserLevel = slog.LevelDebug
	}

	sc, err := padkit.OpenScene(sceneFile)
	if err != nil {
		return err
	}
	if verbose {
		for i := range sc.Joysticks {
			sc.Joysticks[i].Verbose = true
		}
		for i := range sc.Dpads {
			sc.Dpads[i].Verbose = true
		}
		for i := range sc.Sliders {
			sc.Sliders[i].Verbose = true
		}
		for i := range sc.Buttons {
			sc.Buttons[i].Verbose = true
		}
	}
	ws, err := sc.Build()
	if err != nil {
		return err
	}
	attachPrinters(ws)
	fmt.Printf("scene %s: %d controllers\n", sceneFile, len(ws))

	if traceFile == "" {
		return nil
	}
	tr, err := replay.Open(traceFile)
	if err != nil {
		return err
	}
	if err := replay.Run(ws, tr); err != nil {
		return err
	}
	fmt.Printf("replayed %d steps\n", len(tr))
	return nil
}

var colorProfile = termenv.ColorProfile()

// signal prints one emitted controller signal, with the controller
// name colored and releases dimmed.
func signal(name, what string, release bool) {
	color := "4"
	if release {
		color = "8"
	}
	label := termenv.String(name).Bold().Foreground(colorProfile.Color(color))
	fmt.Printf("%s %s\n", label, what)
}

// attachPrinters wires printing callbacks onto every controller.
func attachPrinters(ws []padkit.Widget) {
	for _, w := range ws {
		name := w.WidgetName()
		switch c := w.(type) {
		case *padkit.Joystick:
			c.SetOnChange(func(x, y float32) {
				signal(name, fmt.Sprintf("x=%v y=%v", x, y), false)
			})
			c.SetOnRelease(func(x, y float32) {
				signal(name, "released", true)
			})
		case *padkit.Dpad:
			c.SetOnChange(func(dir padkit.Direction) {
				signal(name, dir.String(), false)
			})
			c.SetOnRelease(func(dir padkit.Direction) {
				signal(name, "released", true)
			})
		case *padkit.Slider:
			c.SetOnChange(func(v int) {
				signal(name, fmt.Sprintf("value=%d", v), false)
			})
			c.SetOnRelease(func() {
				signal(name, "released", true)
			})
		case *padkit.Button:
			c.SetOnChange(func() {
				signal(name, "pressed", false)
			})
			c.SetOnRelease(func() {
				signal(name, "released", true)
			})
		}
	}
}
