package tinyrender

import "errors"

var (
	// ErrVertexCount is returned when the vertex count does not form whole
	// primitives for the pipeline topology.
	ErrVertexCount = errors.New("tinyrender: vertex count does not match topology")

	// ErrNilShader is returned when a pipeline draws without a shader.
	ErrNilShader = errors.New("tinyrender: shader must not be nil")

	// ErrUnsupportedTopology is returned for topologies the pipeline cannot
	// assemble.
	ErrUnsupportedTopology = errors.New("tinyrender: unsupported primitive topology")

	// ErrInvalidOption is returned when a textual setting cannot be parsed.
	ErrInvalidOption = errors.New("tinyrender: invalid option")
)
