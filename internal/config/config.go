// Package config loads the configuration of the planarbench command.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"time"

	"github.com/oliverbestmann/planar/gm"
	"gopkg.in/yaml.v3"
)

type Profile string

const (
	ProfileNone Profile = "none"
	ProfileCPU  Profile = "cpu"
	ProfileMem  Profile = "mem"
)

type Config struct {
	LogLevel string  `yaml:"log_level"`
	Profile  Profile `yaml:"profile"`

	// Buffers is the number of point buffers, each one is advanced
	// by its own goroutine.
	Buffers  int `yaml:"buffers"`
	Capacity int `yaml:"capacity"`
	Frames   int `yaml:"frames"`

	TimeStep time.Duration `yaml:"time_step"`

	// Body is the initial pose of the body driving every buffer.
	Body     Pose    `yaml:"body"`
	Velocity Motion  `yaml:"velocity"`
	Seed     uint64  `yaml:"seed"`
	Extent   float64 `yaml:"extent"`
}

// Pose is a rigid transform written as {position: [x, y], angle: degrees}.
type Pose struct {
	gm.Transform
}

type poseYAML struct {
	Position []float64 `yaml:"position"`
	Angle    float64   `yaml:"angle"`
}

func (p *Pose) UnmarshalYAML(node *yaml.Node) error {
	var raw poseYAML
	if err := decodeStrict(node, &raw, "position", "angle"); err != nil {
		return err
	}

	position, err := vecOf(raw.Position)
	if err != nil {
		return fmt.Errorf("line %d: position: %w", node.Line, err)
	}

	if math.IsNaN(raw.Angle) || math.IsInf(raw.Angle, 0) {
		return fmt.Errorf("line %d: angle must be finite: %w", node.Line, gm.ErrInvalidArgument)
	}

	p.Transform = gm.TransformFromAngle(position, gm.DegToRad(raw.Angle))
	return nil
}

func (p Pose) MarshalYAML() (any, error) {
	return poseYAML{
		Position: []float64{p.P.X, p.P.Y},
		Angle:    p.R.Angle().Degrees(),
	}, nil
}

// Motion is a velocity written as {linear: [x, y], angular: degrees per second}.
type Motion struct {
	Linear  gm.Vec
	Angular gm.Rad
}

type motionYAML struct {
	Linear  []float64 `yaml:"linear"`
	Angular float64   `yaml:"angular"`
}

func (m *Motion) UnmarshalYAML(node *yaml.Node) error {
	var raw motionYAML
	if err := decodeStrict(node, &raw, "linear", "angular"); err != nil {
		return err
	}

	linear, err := vecOf(raw.Linear)
	if err != nil {
		return fmt.Errorf("line %d: linear: %w", node.Line, err)
	}

	if math.IsNaN(raw.Angular) || math.IsInf(raw.Angular, 0) {
		return fmt.Errorf("line %d: angular must be finite: %w", node.Line, gm.ErrInvalidArgument)
	}

	m.Linear = linear
	m.Angular = gm.DegToRad(raw.Angular)
	return nil
}

func (m Motion) MarshalYAML() (any, error) {
	return motionYAML{
		Linear:  []float64{m.Linear.X, m.Linear.Y},
		Angular: m.Angular.Degrees(),
	}, nil
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Profile:  ProfileNone,
		Buffers:  4,
		Capacity: 4096,
		Frames:   600,
		TimeStep: time.Second / 60,
		Body:     Pose{Transform: gm.IdentityTransform()},
		Velocity: Motion{Linear: gm.Vec{X: 1}, Angular: gm.DegToRad(90)},
		Seed:     1,
		Extent:   100,
	}
}

// Load reads the configuration from r. Missing keys keep their default value,
// unknown keys are rejected.
func Load(r io.Reader) (Config, error) {
	config := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func LoadFile(path string) (Config, error) {
	fp, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	defer func() { _ = fp.Close() }()

	return Load(fp)
}

func (c Config) Validate() error {
	switch {
	case c.Buffers <= 0:
		return fmt.Errorf("buffers must be positive, got %d: %w", c.Buffers, gm.ErrInvalidArgument)
	case c.Capacity <= 0:
		return fmt.Errorf("capacity must be positive, got %d: %w", c.Capacity, gm.ErrInvalidArgument)
	case c.Frames <= 0:
		return fmt.Errorf("frames must be positive, got %d: %w", c.Frames, gm.ErrInvalidArgument)
	case c.TimeStep <= 0:
		return fmt.Errorf("time_step must be positive, got %s: %w", c.TimeStep, gm.ErrInvalidArgument)
	case !(c.Extent > 0) || math.IsInf(c.Extent, 0):
		return fmt.Errorf("extent must be positive and finite, got %g: %w", c.Extent, gm.ErrInvalidArgument)
	}

	switch c.Profile {
	case ProfileNone, ProfileCPU, ProfileMem:
	default:
		return fmt.Errorf("unknown profile %q: %w", c.Profile, gm.ErrInvalidArgument)
	}

	return nil
}

func decodeStrict(node *yaml.Node, target any, keys ...string) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping: %w", node.Line, gm.ErrInvalidArgument)
	}

	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		key := node.Content[idx].Value
		if !slices.Contains(keys, key) {
			return fmt.Errorf("line %d: unknown field %q: %w", node.Content[idx].Line, key, gm.ErrInvalidArgument)
		}
	}

	return node.Decode(target)
}

func vecOf(values []float64) (gm.Vec, error) {
	if values == nil {
		return gm.Vec{}, nil
	}

	if len(values) != 2 {
		return gm.Vec{}, fmt.Errorf("expected [x, y], got %d values: %w", len(values), gm.ErrInvalidArgument)
	}

	vec := gm.Vec{X: values[0], Y: values[1]}
	if !vec.IsFinite() {
		return gm.Vec{}, fmt.Errorf("%s is not finite: %w", vec, gm.ErrInvalidArgument)
	}

	return vec, nil
}
