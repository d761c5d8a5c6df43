package h264profile

// IsLessLevel compares H.264 levels and handles the level 1b case.
// Level 1b and level 1 are not less than each other.
func IsLessLevel(a, b Level) bool {
	if a == Level1b {
		return b != Level1 && b != Level1b
	}
	if b == Level1b {
		return a != Level1
	}
	return a < b
}

// MinLevel returns the lesser of a and b.
func MinLevel(a, b Level) Level {
	if IsLessLevel(a, b) {
		return a
	}
	return b
}

// SupportedLevel returns the highest level that guarantees support for
// frames of maxFramePixelCount pixels at maxFPS frames per second.
// The second return value is false if no level is supported.
func SupportedLevel(maxFramePixelCount int, maxFPS float64) (Level, bool) {
	for i := len(levelConstraints) - 1; i >= 0; i-- {
		constraint := levelConstraints[i]
		if constraint.maxMacroblockFrameSize*pixelsPerMacroblock <= maxFramePixelCount &&
			float64(constraint.maxMacroblocksPerSecond) <= maxFPS*float64(constraint.maxMacroblockFrameSize) {
			return constraint.level, true
		}
	}
	return 0, false
}
