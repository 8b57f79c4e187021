package motion

import "github.com/automoto/catsan64/shared/gamemath"

// CameraPose is the world-space placement of the orbit camera.
type CameraPose struct {
	Eye   gamemath.Vec3
	Yaw   float64
	Pitch float64
}

// OrbitCamera rotates around its target under explicit yaw input. Yaw is never
// normalised; only its trigonometric effect matters.
type OrbitCamera struct {
	Yaw    float64
	tuning CameraTuning
}

func NewOrbitCamera(t CameraTuning) *OrbitCamera {
	return &OrbitCamera{tuning: t}
}

func (o *OrbitCamera) Tuning() CameraTuning {
	return o.tuning
}

// Step applies one frame of rotate input and returns the new yaw. Holding both
// directions cancels.
func (o *OrbitCamera) Step(rotateLeft, rotateRight bool, dt float64) (float64, error) {
	if err := CheckDelta(dt); err != nil {
		return o.Yaw, err
	}
	if rotateLeft {
		o.Yaw += o.tuning.YawRate * dt
	}
	if rotateRight {
		o.Yaw -= o.tuning.YawRate * dt
	}
	return o.Yaw, nil
}

// Pose places the camera at the rig offset from target, rotated by the
// current yaw.
func (o *OrbitCamera) Pose(target gamemath.Vec3) CameraPose {
	return CameraPose{
		Eye:   target.Add(gamemath.RotateY(o.tuning.Offset, o.Yaw)),
		Yaw:   o.Yaw,
		Pitch: o.tuning.Pitch,
	}
}
