package render

import "math"

// vertexStride is the mesh vertex layout: position(3) + normal(3), in floats.
const vertexStride = 6

// CylinderMesh builds an open-ended cylinder of the given radius and height
// with its pivot at the base, pointing along +Y. Vertices are interleaved
// position+normal; the seam column is duplicated so texture-free normals wrap
// cleanly. Segments instance this mesh, scaled by their length in the shader.
func CylinderMesh(radius, height float32, sides int) ([]float32, []uint32) {
	verts := make([]float32, 0, (sides+1)*2*vertexStride)
	for i := 0; i <= sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		nx := float32(math.Cos(angle))
		nz := float32(math.Sin(angle))
		x, z := nx*radius, nz*radius

		verts = append(verts, x, 0, z, nx, 0, nz)
		verts = append(verts, x, height, z, nx, 0, nz)
	}

	indices := make([]uint32, 0, sides*6)
	for i := 0; i < sides; i++ {
		b0 := uint32(i * 2)
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b0 + 3
		indices = append(indices, b0, b1, t0, t0, b1, t1)
	}
	return verts, indices
}

// SphereMesh builds a UV sphere centered at the origin, used for the particle
// head markers.
func SphereMesh(radius float32, stacks, slices int) ([]float32, []uint32) {
	verts := make([]float32, 0, (stacks+1)*(slices+1)*vertexStride)
	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		y := float32(math.Cos(phi))
		r := float32(math.Sin(phi))
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			nx := r * float32(math.Cos(theta))
			nz := r * float32(math.Sin(theta))
			verts = append(verts, nx*radius, y*radius, nz*radius, nx, y, nz)
		}
	}

	indices := make([]uint32, 0, stacks*slices*6)
	cols := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*cols + uint32(j)
			b := a + cols
			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return verts, indices
}
