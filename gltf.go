package rotmath

import (
	"bytes"
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
)

// LoadNodeRotationsFile loads a .gltf or .glb file from the filepath given and returns the rotation of each node in it;
// see LoadNodeRotations.
func LoadNodeRotationsFile(path string) (map[string]Quaternion, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return LoadNodeRotations(fileData)

}

// LoadNodeRotations decodes a .gltf or .glb file from the byte data given and returns each node's local rotation as a
// unit Quaternion, keyed by node name. Nodes without a name are keyed as "node" followed by their index.
// A node's rotation is read from its rotation property, or, if that's unset, from the rotational part of its matrix.
func LoadNodeRotations(data []byte) (map[string]Quaternion, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding gltf: %w", err)
	}

	rotations := make(map[string]Quaternion, len(doc.Nodes))

	for i, node := range doc.Nodes {

		name := node.Name
		if name == "" {
			name = fmt.Sprintf("node%d", i)
		}

		rotations[name] = nodeRotation(node)

	}

	return rotations, nil

}

func nodeRotation(node *gltf.Node) Quaternion {

	m := node.Matrix

	// glTF matrices are column-major with column vectors, which lines up element-for-element with a
	// row-major Matrix4 using row vectors.
	var mat Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			mat[i][j] = float32(m[i*4+j])
		}
	}

	if mat == (Matrix4{}) || mat.IsIdentity() {
		r := node.Rotation
		quat := NewQuaternion(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3]))
		return quat.Normalize()
	}

	// Strip any scale out of the rotation rows.
	for i := 0; i < 3; i++ {
		row := Vector3{X: mat[i][0], Y: mat[i][1], Z: mat[i][2]}.Unit()
		mat[i][0], mat[i][1], mat[i][2] = row.X, row.Y, row.Z
	}

	return mat.ToQuaternion().Normalize()

}
