package view

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseMetadataJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "camera.json", `{
		"name": "front",
		"origin": [0, 0, 0],
		"vx": [1, 0, 0],
		"vy": [0, 1, 0],
		"vz": [0, 0, 1]
	}`)

	frame, name, err := parseMetadata(dir)
	if err != nil {
		t.Fatalf("parseMetadata: %v", err)
	}
	if name != "front" {
		t.Errorf("name = %q, want %q", name, "front")
	}
	if frame.Vx != (Vector3{X: 1}) {
		t.Errorf("vx = %+v", frame.Vx)
	}
}

func TestParseMetadataTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "camera.toml", `
name = "side"
origin = [1.0, 2.0, 3.0]
vx = [1.0, 0.0, 0.0]
vy = [0.0, 1.0, 0.0]
vz = [0.0, 0.0, 1.0]
`)

	frame, name, err := parseMetadata(dir)
	if err != nil {
		t.Fatalf("parseMetadata: %v", err)
	}
	if name != "side" {
		t.Errorf("name = %q, want %q", name, "side")
	}
	if frame.Origin != (Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("origin = %+v", frame.Origin)
	}
}

func TestParseMetadataJSONPrecedesTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "camera.json", `{"name":"json-wins","origin":[0,0,0],"vx":[1,0,0],"vy":[0,1,0],"vz":[0,0,1]}`)
	writeFile(t, dir, "camera.toml", `name = "toml-loses"
origin = [0,0,0]
vx = [1,0,0]
vy = [0,1,0]
vz = [0,0,1]
`)

	_, name, err := parseMetadata(dir)
	if err != nil {
		t.Fatalf("parseMetadata: %v", err)
	}
	if name != "json-wins" {
		t.Errorf("name = %q, want camera.json to take precedence", name)
	}
}

func TestParseMetadataMissingFiles(t *testing.T) {
	dir := t.TempDir()
	_, _, err := parseMetadata(dir)
	if !errors.Is(err, ErrMissingFiles) {
		t.Errorf("expected ErrMissingFiles, got %v", err)
	}
}

func TestParseMetadataWrongArity(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "camera.json", `{"name":"bad","origin":[0,0],"vx":[1,0,0],"vy":[0,1,0],"vz":[0,0,1]}`)

	_, _, err := parseMetadata(dir)
	if !errors.Is(err, ErrBadSchema) {
		t.Errorf("expected ErrBadSchema for a 2-element origin, got %v", err)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}
