// Package export turns a reconstructed voxelmodel.Model into portable
// interchange formats: a MagicaVoxel .vox file and an ASCII PLY point
// cloud. Adapted from the teacher's export.go/export/vox.go, but since
// voxelmodel.Model carries no color channel, every occupied voxel maps
// to a single fixed palette index rather than a quantized palette.
package export

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"carve/voxelmodel"
)

// solidColor is the single RGBA color every occupied voxel is assigned.
var solidColor = [4]byte{200, 200, 200, 255}

// WriteVOX writes m's occupied voxels as a MagicaVoxel .vox file.
// Fails if the resolution exceeds .vox's 256-voxel-per-axis limit.
func WriteVOX(m *voxelmodel.Model, path string) error {
	if m.Resolution > 256 {
		return fmt.Errorf("export: resolution %d exceeds .vox maximum of 256", m.Resolution)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	type voxelData struct{ x, y, z uint8 }
	voxels := make([]voxelData, 0, len(m.Cubes))
	for i, x := 0, 0; x < m.Resolution; x++ {
		for y := 0; y < m.Resolution; y++ {
			for z := 0; z < m.Resolution; z++ {
				if !m.Space[x*m.Resolution*m.Resolution+y*m.Resolution+z] {
					continue
				}
				voxels = append(voxels, voxelData{uint8(x), uint8(y), uint8(z)})
				i++
			}
		}
	}

	sizeContent := new(bytes.Buffer)
	binary.Write(sizeContent, binary.LittleEndian, int32(m.Resolution))
	binary.Write(sizeContent, binary.LittleEndian, int32(m.Resolution))
	binary.Write(sizeContent, binary.LittleEndian, int32(m.Resolution))

	xyziContent := new(bytes.Buffer)
	binary.Write(xyziContent, binary.LittleEndian, int32(len(voxels)))
	for _, v := range voxels {
		xyziContent.Write([]byte{v.x, v.y, v.z, 1})
	}

	rgbaContent := new(bytes.Buffer)
	rgbaContent.Write(solidColor[:])
	for i := 1; i < 256; i++ {
		rgbaContent.Write([]byte{0, 0, 0, 255})
	}

	childrenSize := 12 + sizeContent.Len() + 12 + xyziContent.Len() + 12 + rgbaContent.Len()

	w.Write([]byte("VOX "))
	binary.Write(w, binary.LittleEndian, int32(150))

	w.Write([]byte("MAIN"))
	binary.Write(w, binary.LittleEndian, int32(0))
	binary.Write(w, binary.LittleEndian, int32(childrenSize))

	w.Write([]byte("SIZE"))
	binary.Write(w, binary.LittleEndian, int32(sizeContent.Len()))
	binary.Write(w, binary.LittleEndian, int32(0))
	w.Write(sizeContent.Bytes())

	w.Write([]byte("XYZI"))
	binary.Write(w, binary.LittleEndian, int32(xyziContent.Len()))
	binary.Write(w, binary.LittleEndian, int32(0))
	w.Write(xyziContent.Bytes())

	w.Write([]byte("RGBA"))
	binary.Write(w, binary.LittleEndian, int32(rgbaContent.Len()))
	binary.Write(w, binary.LittleEndian, int32(0))
	w.Write(rgbaContent.Bytes())

	return w.Flush()
}
