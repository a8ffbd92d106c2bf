package rlbits

import "math"

const (
	quatNumBits  = 18
	quatMaxRaw   = 1<<quatNumBits - 1
	maxQuatValue = 0.7071067811865475244 // 1/sqrt(2)
)

// Quat is a rotation quaternion.
type Quat struct {
	X, Y, Z, W float32
}

// uncompressQuat maps an 18-bit component onto [-1/sqrt(2), 1/sqrt(2)].
func uncompressQuat(v uint32) float32 {
	positive := float32(v) / float32(quatMaxRaw)
	return (positive - 0.5) * 2 * maxQuatValue
}

// ReadQuat decodes a smallest-three compressed quaternion. A 2-bit tag names
// the component with the largest magnitude, which is not transmitted and is
// rebuilt from the unit length constraint. The other three follow as 18-bit
// quantized values in X, Y, Z, W order.
//
// Encoders can drift so that the three sent components have a squared length
// above 1; the rebuilt component is then 0 instead of NaN.
func (r *Reader) ReadQuat() (Quat, error) {
	largest, err := r.ReadBits(2)
	if err != nil {
		return Quat{}, err
	}
	var c [3]float32
	for i := range c {
		raw, err := r.ReadBits(quatNumBits)
		if err != nil {
			return Quat{}, err
		}
		c[i] = uncompressQuat(uint32(raw))
	}

	sq := 1 - c[0]*c[0] - c[1]*c[1] - c[2]*c[2]
	var extra float32
	if sq > 0 {
		extra = float32(math.Sqrt(float64(sq)))
	}

	switch largest {
	case 0:
		return Quat{extra, c[0], c[1], c[2]}, nil
	case 1:
		return Quat{c[0], extra, c[1], c[2]}, nil
	case 2:
		return Quat{c[0], c[1], extra, c[2]}, nil
	default:
		return Quat{c[0], c[1], c[2], extra}, nil
	}
}
