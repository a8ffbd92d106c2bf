package rlbits

// Vector3I is a quantized location in engine units times 100.
type Vector3I struct {
	X, Y, Z int32
}

// Vector3 is a location in engine units.
type Vector3 struct {
	X, Y, Z float32
}

// Rotator holds pitch, yaw and roll in whole degrees. Components absent from
// the stream are 0.
type Rotator struct {
	Pitch, Yaw, Roll int32
}

// rotatorScale converts a signed byte angle to degrees.
const rotatorScale = 360.0 / 256.0

// ReadVector3I decodes a packed integer vector. The component width is sent
// first as a bounded integer whose range grew from 20 to 22 with net version
// 7; each component is then stored biased by 2^(width-1).
func (r *Reader) ReadVector3I() (Vector3I, error) {
	var maxBits uint32 = 20
	if r.version.Net >= 7 {
		maxBits = 22
	}
	numBits, err := r.ReadBounded(maxBits)
	if err != nil {
		return Vector3I{}, err
	}

	bias := int32(1) << (numBits + 1)
	width := uint(numBits + 2)

	var v [3]int32
	for i := range v {
		raw, err := r.ReadBits(width)
		if err != nil {
			return Vector3I{}, err
		}
		v[i] = int32(raw) - bias
	}
	return Vector3I{v[0], v[1], v[2]}, nil
}

// ReadVector3 decodes a packed integer vector and scales it down by 100.
func (r *Reader) ReadVector3() (Vector3, error) {
	v, err := r.ReadVector3I()
	if err != nil {
		return Vector3{}, err
	}
	return Vector3{
		X: float32(v.X) / 100,
		Y: float32(v.Y) / 100,
		Z: float32(v.Z) / 100,
	}, nil
}

// ReadRotator decodes a compressed rotator: for each of pitch, yaw and roll
// a presence bit, then, if set, a signed byte in 360/256 degree steps.
// Fractional degrees are truncated toward zero.
func (r *Reader) ReadRotator() (Rotator, error) {
	var rot Rotator
	for _, dst := range []*int32{&rot.Pitch, &rot.Yaw, &rot.Roll} {
		present, err := r.ReadBool()
		if err != nil {
			return Rotator{}, err
		}
		if !present {
			continue
		}
		angle, err := r.ReadInt8()
		if err != nil {
			return Rotator{}, err
		}
		*dst = int32(float32(angle) * rotatorScale)
	}
	return rot, nil
}
