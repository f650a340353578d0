// Package scene loads YAML scene descriptions and renders them through a
// tinyrender pipeline.
//
// A scene holds inline geometry, an optional camera, a model transform and
// the pipeline state to draw it with:
//
//	width: 400
//	height: 300
//	clear: midnightblue
//	topology: triangle-list
//	shader: color
//	camera: {eye: [0, 0, 3], target: [0, 0, 0], up: [0, 1, 0], fov: 45}
//	model: {rotate: [0, 30, 0]}
//	vertices:
//	  - {pos: [-1, -1, 0], col: [1, 0, 0]}
//	  - {pos: [1, -1, 0], col: [0, 1, 0]}
//	  - {pos: [0, 1, 0], col: [0, 0, 1]}
//
// Without a camera, vertex positions are taken as normalized device
// coordinates.
package scene

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/tinyrender"
)

// ErrInvalidScene is returned when a scene fails validation.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Scene is a parsed scene file.
type Scene struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Clear  string `yaml:"clear"`

	Topology   string `yaml:"topology"`
	Polygon    string `yaml:"polygon"`
	Cull       string `yaml:"cull"`
	FrontFace  string `yaml:"front_face"`
	Samples    uint32 `yaml:"samples"`
	Degenerate string `yaml:"degenerate"`
	Shader     string `yaml:"shader"`

	Camera   *Camera   `yaml:"camera,omitempty"`
	Model    Transform `yaml:"model"`
	Vertices []Vertex  `yaml:"vertices"`
}

// Camera is a perspective camera. Fov is the vertical field of view in
// degrees.
type Camera struct {
	Eye    [3]float64 `yaml:"eye"`
	Target [3]float64 `yaml:"target"`
	Up     [3]float64 `yaml:"up"`
	Fov    float64    `yaml:"fov"`
	Near   float64    `yaml:"near"`
	Far    float64    `yaml:"far"`
}

// Transform places the geometry in world space. Rotate holds Euler angles
// in degrees applied X, then Y, then Z.
type Transform struct {
	Translate [3]float64  `yaml:"translate"`
	Rotate    [3]float64  `yaml:"rotate"`
	Scale     *[3]float64 `yaml:"scale,omitempty"`
}

// Vertex is one input vertex.
type Vertex struct {
	Pos [3]float64  `yaml:"pos"`
	Col *[3]float64 `yaml:"col,omitempty"`
	Nor [3]float64  `yaml:"nor"`
	Tex [2]float64  `yaml:"tex"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene from YAML, fills in defaults and validates it.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) applyDefaults() {
	if s.Width == 0 {
		s.Width = 256
	}
	if s.Height == 0 {
		s.Height = 256
	}
	if s.Clear == "" {
		s.Clear = "black"
	}
	if c := s.Camera; c != nil {
		if c.Up == ([3]float64{}) {
			c.Up = [3]float64{0, 1, 0}
		}
		if c.Fov == 0 {
			c.Fov = 45
		}
		if c.Near == 0 {
			c.Near = 0.1
		}
		if c.Far == 0 {
			c.Far = 100
		}
	}
}

// Validate checks sizes, camera parameters and every textual setting.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if len(s.Vertices) == 0 {
		return fmt.Errorf("%w: no vertices", ErrInvalidScene)
	}
	if c := s.Camera; c != nil {
		if c.Fov <= 0 || c.Fov >= 180 {
			return fmt.Errorf("%w: fov %v out of range (0, 180)", ErrInvalidScene, c.Fov)
		}
		if c.Near <= 0 || c.Far <= c.Near {
			return fmt.Errorf("%w: near %v, far %v", ErrInvalidScene, c.Near, c.Far)
		}
		if c.Eye == c.Target {
			return fmt.Errorf("%w: camera eye equals target", ErrInvalidScene)
		}
	}
	if _, err := ParseColor(s.Clear); err != nil {
		return err
	}
	if _, err := s.Options(); err != nil {
		return err
	}
	if _, err := s.NewShader(0); err != nil {
		return err
	}
	return nil
}

// ClearColor returns the parsed background color.
func (s *Scene) ClearColor() gputypes.Color {
	c, err := ParseColor(s.Clear)
	if err != nil {
		return gputypes.ColorBlack
	}
	return c
}

// Extent returns the render target size.
func (s *Scene) Extent() gputypes.Extent3D {
	return gputypes.NewExtent2D(uint32(s.Width), uint32(s.Height)) //nolint:gosec // validated positive
}

// PrimitiveState returns the topology, winding and cull mode of the scene.
func (s *Scene) PrimitiveState() (gputypes.PrimitiveState, error) {
	topology, err := ParseTopology(s.Topology)
	if err != nil {
		return gputypes.PrimitiveState{}, err
	}
	cull, err := parseCullMode(s.Cull)
	if err != nil {
		return gputypes.PrimitiveState{}, err
	}
	front, err := parseFrontFace(s.FrontFace)
	if err != nil {
		return gputypes.PrimitiveState{}, err
	}
	return gputypes.PrimitiveState{Topology: topology, FrontFace: front, CullMode: cull}, nil
}

// Options returns the pipeline options described by the scene.
func (s *Scene) Options() ([]tinyrender.PipelineOption, error) {
	ps, err := s.PrimitiveState()
	if err != nil {
		return nil, err
	}
	polygon, err := tinyrender.ParsePolygonMode(s.Polygon)
	if err != nil {
		return nil, err
	}
	policy, err := tinyrender.ParseDegeneratePolicy(s.Degenerate)
	if err != nil {
		return nil, err
	}
	return []tinyrender.PipelineOption{
		tinyrender.WithPrimitiveState(ps),
		tinyrender.WithPolygonMode(polygon),
		tinyrender.WithMultisample(s.Multisample()),
		tinyrender.WithDegeneratePolicy(policy),
	}, nil
}

// Multisample returns the sample state. Zero samples selects four.
func (s *Scene) Multisample() gputypes.MultisampleState {
	return gputypes.MultisampleState{Count: s.Samples, Mask: ^uint64(0)}
}

// SamplesPerPixel is the number of samples that fully cover a pixel: the
// pattern size for filled triangles and one otherwise.
func (s *Scene) SamplesPerPixel() int {
	ps, err := s.PrimitiveState()
	if err != nil {
		return 1
	}
	polygon, _ := tinyrender.ParsePolygonMode(s.Polygon)
	switch ps.Topology {
	case gputypes.PrimitiveTopologyTriangleList, gputypes.PrimitiveTopologyTriangleStrip:
		if polygon == tinyrender.PolygonFill {
			pattern, _ := tinyrender.SamplePatternFor(s.Multisample())
			return len(pattern)
		}
	}
	return 1
}

// ModelMatrix returns the model transform with an extra spin, in degrees,
// about the world Y axis.
func (s *Scene) ModelMatrix(spin float64) tinyrender.Mat4 {
	t, r := s.Model.Translate, s.Model.Rotate
	scale := [3]float64{1, 1, 1}
	if s.Model.Scale != nil {
		scale = *s.Model.Scale
	}
	m := tinyrender.Translate(t[0], t[1], t[2]).
		Multiply(tinyrender.RotateY(radians(spin))).
		Multiply(tinyrender.RotateZ(radians(r[2]))).
		Multiply(tinyrender.RotateY(radians(r[1]))).
		Multiply(tinyrender.RotateX(radians(r[0]))).
		Multiply(tinyrender.Scale(scale[0], scale[1], scale[2]))
	return m
}

// ViewProject returns projection * view for the camera, or the identity
// when the scene has none.
func (s *Scene) ViewProject() tinyrender.Mat4 {
	c := s.Camera
	if c == nil {
		return tinyrender.Identity()
	}
	aspect := float64(s.Width) / float64(s.Height)
	proj := tinyrender.Perspective(radians(c.Fov), aspect, c.Near, c.Far)
	view := tinyrender.LookAt(vec3(c.Eye), vec3(c.Target), vec3(c.Up))
	return proj.Multiply(view)
}

// NewShader returns the named shader set up with the scene transforms and
// the given spin.
func (s *Scene) NewShader(spin float64) (tinyrender.Shader, error) {
	base := tinyrender.DefaultShader{Model: s.ModelMatrix(spin), ViewProject: s.ViewProject()}
	switch strings.ToLower(strings.TrimSpace(s.Shader)) {
	case "", "texcoord", "default":
		return &base, nil
	case "color", "colour":
		return &tinyrender.ColorShader{DefaultShader: base}, nil
	case "normal":
		return &tinyrender.NormalShader{DefaultShader: base}, nil
	default:
		return nil, fmt.Errorf("%w: shader %q", ErrInvalidScene, s.Shader)
	}
}

// VertexData converts the scene vertices to pipeline input. Vertices
// without a color are white.
func (s *Scene) VertexData() []tinyrender.VertexData {
	out := make([]tinyrender.VertexData, len(s.Vertices))
	for i, v := range s.Vertices {
		col := tinyrender.V3(1, 1, 1)
		if v.Col != nil {
			col = vec3(*v.Col)
		}
		out[i] = tinyrender.VertexData{
			Pos: tinyrender.Point4(vec3(v.Pos)),
			Col: col,
			Nor: vec3(v.Nor),
			Tex: tinyrender.V2(v.Tex[0], v.Tex[1]),
		}
	}
	return out
}

// ParseTopology accepts "triangle-list", "TriangleList", "triangle_list"
// and the like for every gputypes topology.
func ParseTopology(name string) (gputypes.PrimitiveTopology, error) {
	switch normalize(name) {
	case "", "trianglelist", "triangles":
		return gputypes.PrimitiveTopologyTriangleList, nil
	case "trianglestrip":
		return gputypes.PrimitiveTopologyTriangleStrip, nil
	case "linelist", "lines":
		return gputypes.PrimitiveTopologyLineList, nil
	case "linestrip":
		return gputypes.PrimitiveTopologyLineStrip, nil
	case "pointlist", "points":
		return gputypes.PrimitiveTopologyPointList, nil
	default:
		return 0, fmt.Errorf("%w: topology %q", ErrInvalidScene, name)
	}
}

func parseCullMode(name string) (gputypes.CullMode, error) {
	switch normalize(name) {
	case "", "none":
		return gputypes.CullModeNone, nil
	case "front":
		return gputypes.CullModeFront, nil
	case "back":
		return gputypes.CullModeBack, nil
	default:
		return 0, fmt.Errorf("%w: cull mode %q", ErrInvalidScene, name)
	}
}

func parseFrontFace(name string) (gputypes.FrontFace, error) {
	switch normalize(name) {
	case "", "ccw", "counterclockwise":
		return gputypes.FrontFaceCCW, nil
	case "cw", "clockwise":
		return gputypes.FrontFaceCW, nil
	default:
		return 0, fmt.Errorf("%w: front face %q", ErrInvalidScene, name)
	}
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}

func vec3(a [3]float64) tinyrender.Vec3 {
	return tinyrender.V3(a[0], a[1], a[2])
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
