package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning file holds out-of-range values.
var ErrInvalidTuning = errors.New("invalid tuning")

// TuningFile is the YAML layout of a tuning override file. Fields that are not
// present keep their current values.
type TuningFile struct {
	Movement MovementConfig  `yaml:"movement"`
	Camera   CameraRigConfig `yaml:"camera"`
	Frame    struct {
		MaxDelta float64 `yaml:"max_delta"`
	} `yaml:"frame"`
}

// CurrentTuning snapshots the active tuning globals.
func CurrentTuning() TuningFile {
	t := TuningFile{Movement: Movement, Camera: Camera}
	t.Frame.MaxDelta = Frame.MaxDelta
	return t
}

// ParseTuning overlays YAML data on base and validates the result. Unknown
// keys are rejected.
func ParseTuning(data []byte, base TuningFile) (TuningFile, error) {
	t := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads a tuning file and applies it to the globals.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data, CurrentTuning())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	t.Apply()
	return nil
}

// Apply writes the tuning into the globals.
func (t TuningFile) Apply() {
	Movement = t.Movement
	Camera = t.Camera
	Frame.MaxDelta = t.Frame.MaxDelta
}

// Validate checks the ranges the steppers rely on.
func (t TuningFile) Validate() error {
	m := t.Movement
	switch {
	case m.MaxWalk <= 0 || m.MaxRun <= 0:
		return fmt.Errorf("speed caps must be positive (walk %v, run %v): %w", m.MaxWalk, m.MaxRun, ErrInvalidTuning)
	case m.Friction < 0 || m.Friction > 1:
		return fmt.Errorf("friction %v outside [0, 1]: %w", m.Friction, ErrInvalidTuning)
	case m.TerminalVelocity > 0:
		return fmt.Errorf("terminal velocity %v must not be positive: %w", m.TerminalVelocity, ErrInvalidTuning)
	case m.Gravity < 0 || m.GravityScale < 0:
		return fmt.Errorf("gravity must not be negative: %w", ErrInvalidTuning)
	case m.ReferenceFrameRate <= 0:
		return fmt.Errorf("reference frame rate %v must be positive: %w", m.ReferenceFrameRate, ErrInvalidTuning)
	case t.Camera.FOV <= 0 || t.Camera.FOV >= 180:
		return fmt.Errorf("camera fov %v outside (0, 180): %w", t.Camera.FOV, ErrInvalidTuning)
	case t.Frame.MaxDelta < 0:
		return fmt.Errorf("frame max_delta %v must not be negative: %w", t.Frame.MaxDelta, ErrInvalidTuning)
	}
	return nil
}
