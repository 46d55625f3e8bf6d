package renderer

import (
	gomath "math"

	"github.com/Faultbox/panoview/pkg/math"
)

// Mesh is an indexed triangle mesh with interleaved position and UV.
type Mesh struct {
	Vertices []float32 // x, y, z, u, v
	Indices  []uint32
}

// vertexStride is the number of floats per vertex.
const vertexStride = 5

// SphereMesh builds a unit sphere seen from the inside. Stacks run from the
// zenith down to the nadir and slices run in the direction of increasing yaw.
// UVs map an equirectangular image so that yaw 0 samples the image centre.
func SphereMesh(slices, stacks int) Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	m := Mesh{
		Vertices: make([]float32, 0, (slices+1)*(stacks+1)*vertexStride),
		Indices:  make([]uint32, 0, slices*stacks*6),
	}

	for i := 0; i <= stacks; i++ {
		v := float64(i) / float64(stacks)
		pitch := gomath.Pi/2 - v*gomath.Pi
		for j := 0; j <= slices; j++ {
			s := float64(j) / float64(slices)
			d := math.SphereDirection(s*2*gomath.Pi, pitch)
			// Turning left moves toward the left edge; the texture repeats.
			m.Vertices = append(m.Vertices, d.X, d.Y, d.Z, float32(0.5-s), float32(v))
		}
	}

	row := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*row + uint32(j)
			b := a + row
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return m
}
