package h264profile

import "math"

// BitPattern matches bytes against templates such as "x1xx0000" where 'x' is
// allowed to be either 0 or 1.
type BitPattern struct {
	mask        byte
	maskedValue byte
}

// NewBitPattern compiles an 8 character template of '0', '1' and 'x',
// most significant bit first.
func NewBitPattern(str string) BitPattern {
	return BitPattern{
		mask:        math.MaxUint8 - byteMaskString('x', str),
		maskedValue: byteMaskString('1', str),
	}
}

// IsMatch reports whether every fixed bit of the pattern equals the same bit of value.
func (b BitPattern) IsMatch(value byte) bool {
	return b.maskedValue == value&b.mask
}

// byteMaskString converts a string of 8 characters into a byte where the
// positions containing character c have their bit set. For example,
// c = 'x', str = "x1xx0000" returns 0b10110000.
func byteMaskString(c byte, str string) (mask byte) {
	for i := 0; i < len(str) && i < byteSize; i++ {
		if str[i] == c {
			mask |= 1 << uint(byteSize-1-i) //nolint:gosec // i < byteSize
		}
	}
	return
}

// profilePattern converts between profile_idc/profile_iop and Profile.
type profilePattern struct {
	profileIdc byte
	profileIop BitPattern
	profile    Profile
}

// From https://tools.ietf.org/html/rfc6184#section-8.1.
var profilePatterns = []profilePattern{
	{0x42, NewBitPattern("x1xx0000"), ProfileConstrainedBaseline},
	{0x4D, NewBitPattern("1xxx0000"), ProfileConstrainedBaseline},
	{0x58, NewBitPattern("11xx0000"), ProfileConstrainedBaseline},
	{0x42, NewBitPattern("x0xx0000"), ProfileBaseline},
	{0x58, NewBitPattern("10xx0000"), ProfileBaseline},
	{0x4D, NewBitPattern("0x0x0000"), ProfileMain},
	{0x64, NewBitPattern("00000000"), ProfileHigh},
	{0x64, NewBitPattern("00001100"), ProfileConstrainedHigh},
	{0xF4, NewBitPattern("00000000"), ProfilePredictiveHigh444},
}

// levelConstraint holds the limits of a level from ITU-T H.264 Table A-1.
type levelConstraint struct {
	maxMacroblocksPerSecond int
	maxMacroblockFrameSize  int
	level                   Level
}

// Ordered from the lowest level to the highest.
var levelConstraints = []levelConstraint{
	{1485, 99, Level1},
	{1485, 99, Level1b},
	{3000, 396, Level1_1},
	{6000, 396, Level1_2},
	{11880, 396, Level1_3},
	{11880, 396, Level2},
	{19800, 792, Level2_1},
	{20250, 1620, Level2_2},
	{40500, 1620, Level3},
	{108000, 3600, Level3_1},
	{216000, 5120, Level3_2},
	{245760, 8192, Level4},
	{245760, 8192, Level4_1},
	{522240, 8704, Level4_2},
	{589824, 22080, Level5},
	{983040, 36864, Level5_1},
	{2073600, 36864, Level5_2},
}
