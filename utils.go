package h264profile

// logTag is the object column used for diagnostics of this package.
const logTag = "H264PROFILE"

// byteSize is the number of bits in a byte.
const byteSize = 8

// profileLevelIDLength is the length of profile-level-id as 3 hex bytes.
const profileLevelIDLength = 6

// For level_idc=11 and profile_idc=0x42, 0x4D, or 0x58, the constraint set3
// flag specifies if level 1b or level 1.1 is used.
const constraintSet3Flag = 0x10

// pixelsPerMacroblock is the area of a 16x16 macroblock.
const pixelsPerMacroblock = 16 * 16

// SDP fmtp parameter names (RFC 6184).
const (
	ParamProfileLevelID        = "profile-level-id"
	ParamLevelAsymmetryAllowed = "level-asymmetry-allowed"
	ParamPacketizationMode     = "packetization-mode"
)
