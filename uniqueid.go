package rlbits

import "fmt"

// Platform identifies the online service behind a UniqueID.
type Platform uint8

// Platform tags as written by the game.
const (
	PlatformUnknown Platform = 0 // local splitscreen players
	PlatformSteam   Platform = 1
	PlatformPS4     Platform = 2
	PlatformPS3     Platform = 3
	PlatformXbox    Platform = 4
	PlatformQQ      Platform = 5
	PlatformSwitch  Platform = 6
	PlatformPsyNet  Platform = 7
	PlatformEpic    Platform = 11
)

var platformNames = map[Platform]string{
	PlatformUnknown: "Unknown",
	PlatformSteam:   "Steam",
	PlatformPS4:     "PS4",
	PlatformPS3:     "PS3",
	PlatformXbox:    "Xbox",
	PlatformQQ:      "QQ",
	PlatformSwitch:  "Switch",
	PlatformPsyNet:  "PsyNet",
	PlatformEpic:    "Epic",
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Platform(%d)", uint8(p))
}

// ps4 identifier payload sizes in bytes, before and after net version 1.
const (
	ps4IDBytes       = 40
	ps4IDBytesLegacy = 32
)

// UniqueID is a player identifier. Payload holds the platform specific part
// and is one of SteamID, XboxID, PS4ID, SwitchID, PsyNetID or UnknownID, or
// nil for platforms that carry no payload.
type UniqueID struct {
	Platform     Platform
	PlayerNumber uint8
	Payload      PlatformID
}

// PlatformID is the closed set of identifier payloads.
type PlatformID interface {
	platform() Platform
}

// SteamID is a 64-bit Steam account id.
type SteamID struct {
	ID uint64
}

// XboxID is a 64-bit Xbox Live id.
type XboxID struct {
	ID uint64
}

// PS4ID is the raw PlayStation Network identifier block. It is 40 bytes long
// in replays with net version 1 or later and 32 bytes before that.
type PS4ID struct {
	Data []byte
}

// SwitchID is a Nintendo Switch identifier.
type SwitchID struct {
	A, B, C, D uint64
}

// PsyNetID is a Psyonix account identifier. Replays from engine 868,
// licensee 24 and net 10 onwards only fill A.
type PsyNetID struct {
	A, B, C, D uint64
}

// UnknownID is the identifier of a local player. Value is 24 bits wide and
// absent (0) in licensee 18+ replays with net version 0.
type UnknownID struct {
	Value uint32
}

func (SteamID) platform() Platform   { return PlatformSteam }
func (XboxID) platform() Platform    { return PlatformXbox }
func (PS4ID) platform() Platform     { return PlatformPS4 }
func (SwitchID) platform() Platform  { return PlatformSwitch }
func (PsyNetID) platform() Platform  { return PlatformPsyNet }
func (UnknownID) platform() Platform { return PlatformUnknown }

// ReadUniqueID decodes an 8-bit platform tag, its payload and a trailing
// player number byte. Unrecognized tags are not an error: they decode with a
// nil payload so newer platforms do not break older readers.
func (r *Reader) ReadUniqueID() (UniqueID, error) {
	tag, err := r.ReadUint8()
	if err != nil {
		return UniqueID{}, err
	}
	id := UniqueID{Platform: Platform(tag)}

	switch id.Platform {
	case PlatformSteam:
		v, err := r.ReadUint64()
		if err != nil {
			return UniqueID{}, err
		}
		id.Payload = SteamID{ID: v}
	case PlatformXbox:
		v, err := r.ReadUint64()
		if err != nil {
			return UniqueID{}, err
		}
		id.Payload = XboxID{ID: v}
	case PlatformPS4:
		n := ps4IDBytesLegacy
		if r.version.Net >= 1 {
			n = ps4IDBytes
		}
		data, err := r.ReadBytes(n)
		if err != nil {
			return UniqueID{}, err
		}
		id.Payload = PS4ID{Data: data}
	case PlatformSwitch:
		var s SwitchID
		if err := r.readUint64s(&s.A, &s.B, &s.C, &s.D); err != nil {
			return UniqueID{}, err
		}
		id.Payload = s
	case PlatformPsyNet:
		var p PsyNetID
		fields := []*uint64{&p.A, &p.B, &p.C, &p.D}
		if r.psyNetShortID() {
			fields = fields[:1]
		}
		if err := r.readUint64s(fields...); err != nil {
			return UniqueID{}, err
		}
		id.Payload = p
	case PlatformUnknown:
		var u UnknownID
		if r.version.Licensee < 18 || r.version.Net != 0 {
			v, err := r.ReadBits(24)
			if err != nil {
				return UniqueID{}, err
			}
			u.Value = uint32(v)
		}
		id.Payload = u
	}

	if id.PlayerNumber, err = r.ReadUint8(); err != nil {
		return UniqueID{}, err
	}
	return id, nil
}

func (r *Reader) psyNetShortID() bool {
	v := r.version
	return v.Engine >= 868 && v.Licensee >= 24 && v.Net >= 10
}

func (r *Reader) readUint64s(dst ...*uint64) error {
	for _, d := range dst {
		v, err := r.ReadUint64()
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}
