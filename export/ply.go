package export

import (
	"bufio"
	"fmt"
	"os"

	"carve/voxelmodel"
)

// WritePLY writes m's occupied voxel centers as an ASCII PLY point
// cloud, one vertex per surviving cube, colored with solidColor.
func WritePLY(m *voxelmodel.Model, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	defer w.Flush()

	fmt.Fprintf(w, "ply\nformat ascii 1.0\n")
	fmt.Fprintf(w, "element vertex %d\n", len(m.Cubes))
	fmt.Fprintf(w, "property float x\nproperty float y\nproperty float z\n")
	fmt.Fprintf(w, "property uchar red\nproperty uchar green\nproperty uchar blue\n")
	fmt.Fprintf(w, "end_header\n")

	for _, c := range m.Cubes {
		fmt.Fprintf(w, "%v %v %v %d %d %d\n",
			c.X, c.Y, c.Z, solidColor[0], solidColor[1], solidColor[2])
	}

	return nil
}
