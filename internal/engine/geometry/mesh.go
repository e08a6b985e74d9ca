package geometry

// Mesh is an ordered collection of world-space triangles. Helper meshes
// (grids, gizmo geometry) carry no hatchable surface and are skipped by
// the engine.
type Mesh struct {
	Name      string
	Triangles []Triangle
	Helper    bool
}
