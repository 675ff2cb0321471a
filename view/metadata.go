package view

import (
	"encoding/json"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// metadata is the camera.{json,toml} schema: a name plus the three basis
// vectors and the origin, each a 3-element numeric array (spec.md §6).
// Fields are slices rather than fixed arrays so a wrong array length
// surfaces instead of being silently truncated/zero-padded.
type metadata struct {
	Name   *string   `json:"name" toml:"name"`
	Origin []float32 `json:"origin" toml:"origin"`
	Vx     []float32 `json:"vx" toml:"vx"`
	Vy     []float32 `json:"vy" toml:"vy"`
	Vz     []float32 `json:"vz" toml:"vz"`
}

// parseMetadata decodes camera.json or camera.toml, preferring the JSON
// form if both files happen to exist in the view's directory (spec.md is
// silent on precedence; SPEC_FULL.md §10 decides JSON wins).
func parseMetadata(dir string) (Frame, string, error) {
	jsonPath := dir + "/camera.json"
	tomlPath := dir + "/camera.toml"

	if data, err := os.ReadFile(jsonPath); err == nil {
		return decodeMetadata(data, json.Unmarshal)
	}
	if data, err := os.ReadFile(tomlPath); err == nil {
		return decodeMetadata(data, toml.Unmarshal)
	}
	return Frame{}, "", ErrMissingFiles
}

func decodeMetadata(data []byte, unmarshal func([]byte, any) error) (Frame, string, error) {
	var m metadata
	if err := unmarshal(data, &m); err != nil {
		return Frame{}, "", fmt.Errorf("%w: %v", ErrBadSchema, err)
	}

	if m.Name == nil {
		return Frame{}, "", fmt.Errorf("%w: missing or non-string field 'name'", ErrBadSchema)
	}
	origin, err := toVector3(m.Origin, "origin")
	if err != nil {
		return Frame{}, "", err
	}
	vx, err := toVector3(m.Vx, "vx")
	if err != nil {
		return Frame{}, "", err
	}
	vy, err := toVector3(m.Vy, "vy")
	if err != nil {
		return Frame{}, "", err
	}
	vz, err := toVector3(m.Vz, "vz")
	if err != nil {
		return Frame{}, "", err
	}

	return Frame{Origin: origin, Vx: vx, Vy: vy, Vz: vz}, *m.Name, nil
}

func toVector3(arr []float32, field string) (Vector3, error) {
	if len(arr) != 3 {
		return Vector3{}, fmt.Errorf("%w: field '%s' must be a 3-element numeric array", ErrBadSchema, field)
	}
	return Vector3{X: arr[0], Y: arr[1], Z: arr[2]}, nil
}
