package renderer

import "fmt"

// VertexStride is the number of floats per vertex: a position followed by a normal.
const VertexStride = 6

// CubeVertices is a unit cube centered at the origin as 36 triangle vertices with
// outward facing normals.
var CubeVertices = []float32{
	// back face
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0,
	0.5, -0.5, -0.5, 0.0, 0.0, -1.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
	-0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0,

	// front face
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,

	// left face
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0,
	-0.5, 0.5, -0.5, -1.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0,
	-0.5, -0.5, 0.5, -1.0, 0.0, 0.0,
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0,

	// right face
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0,

	// bottom face
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0,
	0.5, -0.5, -0.5, 0.0, -1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0,

	// top face
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
}

// PyramidVertices is a square pyramid with a unit base on y = 0 and its apex at (0, 1, 0).
// Vertices are shared between faces, so each normal points away from the pyramid's centroid.
var PyramidVertices = []float32{
	-0.5, 0.0, -0.5, -0.6804138, -0.2721655, -0.6804138,
	0.5, 0.0, -0.5, 0.6804138, -0.2721655, -0.6804138,
	0.5, 0.0, 0.5, 0.6804138, -0.2721655, 0.6804138,
	-0.5, 0.0, 0.5, -0.6804138, -0.2721655, 0.6804138,
	0.0, 1.0, 0.0, 0.0, 1.0, 0.0,
}

// PyramidIndices draws PyramidVertices as two base triangles and four sides.
var PyramidIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
	0, 1, 4,
	1, 2, 4,
	2, 3, 4,
	3, 0, 4,
}

// vertexCount validates interleaved vertex data and returns how many vertices it holds.
func vertexCount(vertices []float32) (int, error) {
	if len(vertices) == 0 {
		return 0, fmt.Errorf("mesh has no vertices")
	}
	if len(vertices)%VertexStride != 0 {
		return 0, fmt.Errorf("mesh has %d floats, not a multiple of the %d-float vertex stride", len(vertices), VertexStride)
	}
	return len(vertices) / VertexStride, nil
}

// indexCount validates triangle indices against the number of vertices they address.
func indexCount(indices []uint32, vertices int) (int, error) {
	if len(indices) == 0 {
		return 0, fmt.Errorf("mesh has no indices")
	}
	if len(indices)%3 != 0 {
		return 0, fmt.Errorf("mesh has %d indices, not a whole number of triangles", len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= vertices {
			return 0, fmt.Errorf("index %d at %d is out of range for %d vertices", idx, i, vertices)
		}
	}
	return len(indices), nil
}
