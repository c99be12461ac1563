package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rouzeris/catroom/mascot"
	"github.com/rouzeris/catroom/prefabs"
	"gopkg.in/yaml.v3"
)

func TestCheck(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"defaults", "name: cat\n", nil},
		{"missing_walk_animation", "walk: { right: Moonwalk }\n", mascot.ErrUnknownAnimation},
		{"missing_idle_animation", "idle: { animations: [Idle, Yawning] }\n", mascot.ErrUnknownAnimation},
		{"catalog_without_surprised", "animations:\n  Idle: { frames: 13, duration_ms: 150 }\n", mascot.ErrUnknownAnimation},
		{"empty_cycle", "animations:\n  Idle: { frames: 0, duration_ms: 150 }\n", mascot.ErrInvalidConfig},
		{"unknown_guard", "guards:\n  - { behavior: Flying, weight: 0.5 }\n", mascot.ErrInvalidConfig},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var spec prefabs.MascotSpec
			if err := yaml.Unmarshal([]byte(c.doc), &spec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			err := check(&spec)
			if c.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestCheckBundledPrefabs(t *testing.T) {
	for _, name := range []string{"cat.yaml", "cat_scripted.yaml"} {
		t.Run(strings.TrimSuffix(name, ".yaml"), func(t *testing.T) {
			spec, err := prefabs.LoadMascotSpec(name)
			if err != nil {
				t.Fatal(err)
			}
			if err := check(spec); err != nil {
				t.Fatalf("bundled prefab failed: %v", err)
			}
		})
	}
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	printCatalog(&buf, mascot.Catalog{
		mascot.AnimSurprised: {FrameCount: 4, FrameDuration: 200},
		mascot.AnimIdle:      {FrameCount: 13, FrameDuration: 150},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[1], "Idle") || !strings.Contains(lines[1], "1950") {
		t.Fatalf("unexpected Idle row %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Surprised") || !strings.Contains(lines[2], "800") {
		t.Fatalf("unexpected Surprised row %q", lines[2])
	}
}

func TestRunPrintsInitialSnapshot(t *testing.T) {
	spec, err := prefabs.LoadMascotSpec("cat.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := run(spec, &buf, 100*time.Millisecond, time.Millisecond, 1); err != nil {
		t.Fatal(err)
	}

	var first struct {
		X        float64 `yaml:"x"`
		Y        float64 `yaml:"y"`
		Behavior string  `yaml:"behavior"`
	}
	if err := yaml.NewDecoder(&buf).Decode(&first); err != nil {
		t.Fatalf("decode first snapshot: %v", err)
	}
	if first.Behavior != "Idle" || first.X != 45 || first.Y != 55 {
		t.Fatalf("expected the mount state first, got %+v", first)
	}
}
