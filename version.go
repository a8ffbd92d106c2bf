package rlbits

import "fmt"

// Version is the format version context read from a replay header. Several
// decoders branch on it to follow format changes across game releases.
type Version struct {
	Engine   uint32
	Licensee uint32
	Net      uint32
}

// IsZero reports whether no version information was supplied.
func (v Version) IsZero() bool {
	return v.Engine == 0 && v.Licensee == 0 && v.Net == 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Engine, v.Licensee, v.Net)
}
