package report

import (
	"strings"
	"testing"

	"carve/view"
	"carve/voxelmodel"
)

func TestModelInfoBlockIncludesBoundsAndViews(t *testing.T) {
	m := &voxelmodel.Model{
		Resolution:     4,
		Bounds:         [6]float32{-1, 1, -1, 1, -1, 1},
		CubeDimensions: view.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
		Cubes:          make([]view.Vector3, 3),
		Views: []*view.View{
			{Name: "front", Frame: view.Frame{Vy: view.Vector3{Z: 1}}},
		},
	}

	out := ModelInfoBlock(m)
	if !strings.Contains(out, "front") {
		t.Errorf("expected info block to mention view name, got: %s", out)
	}
	if !strings.Contains(out, "Number of active voxels: 3") {
		t.Errorf("expected active voxel count, got: %s", out)
	}
}
