package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/lowpoly-water/internal/meshio"
)

func setFlag(t *testing.T, name, value string) {
	t.Helper()
	old := flag.Lookup(name).Value.String()
	if err := flag.Set(name, value); err != nil {
		t.Fatalf("setting -%s: %v", name, err)
	}
	t.Cleanup(func() { flag.Set(name, old) })
}

func TestRunGenerate(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))
	out := filepath.Join(tmp, "out")

	setFlag(t, "out", out)
	setFlag(t, "segments", "4")
	setFlag(t, "formats", "obj,lpwm,png")
	setFlag(t, "preview-size", "64")

	if code := run([]string{"generate"}); code != 0 {
		t.Fatalf("generate exited with %d", code)
	}

	for _, name := range []string{"water.obj", "water.lpwm", "water.png", "water.field.yaml"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	m, err := meshio.ParseBuffersFile(filepath.Join(out, "water.lpwm"))
	if err != nil {
		t.Fatalf("ParseBuffersFile failed: %v", err)
	}
	if m.SegmentCount != 4 || len(m.Vertices) != 25 {
		t.Errorf("unexpected mesh: %d segments, %d vertices", m.SegmentCount, len(m.Vertices))
	}
}

func TestRunRejectsOversizedMesh(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))

	setFlag(t, "out", filepath.Join(tmp, "out"))
	setFlag(t, "segments", "256")

	if code := run([]string{"info"}); code == 0 {
		t.Error("expected non-zero exit for 256 segments")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))
	if code := run([]string{"explode"}); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestRunInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watermesh.yaml")
	if code := run([]string{"init-config", path}); code != 0 {
		t.Fatalf("init-config exited with %d", code)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config not written: %v", err)
	}
}
