package h264profile

import (
	"fmt"
	"strconv"

	"github.com/ugparu/h264profile/utils/logger"
)

// ParseProfileLevelID parses a profile-level-id represented as a string of 3 hex bytes.
// The second return value is false if the string is not a recognized H.264 profile level id.
func ParseProfileLevelID(str string) (id ProfileLevelID, ok bool) {
	// The string should consist of 3 bytes in hexadecimal format.
	if len(str) != profileLevelIDLength {
		logger.Debugf(logTag, "malformed profile-level-id %q", str)
		return
	}
	numeric, err := strconv.ParseUint(str, 16, 32)
	if err != nil || numeric == 0 {
		logger.Debugf(logTag, "malformed profile-level-id %q", str)
		return
	}

	// Separate into three bytes.
	levelIdc := byte(numeric & 0xFF)
	profileIop := byte(numeric >> 8 & 0xFF)
	profileIdc := byte(numeric >> 16 & 0xFF)

	// Parse level based on level_idc and constraint set 3 flag.
	var level Level
	switch lvl := Level(levelIdc); lvl {
	case Level1_1:
		if profileIop&constraintSet3Flag != 0 {
			level = Level1b
		} else {
			level = Level1_1
		}
	case Level1, Level1_2, Level1_3, Level2, Level2_1, Level2_2,
		Level3, Level3_1, Level3_2, Level4, Level4_1, Level4_2,
		Level5, Level5_1, Level5_2:
		level = lvl
	default:
		logger.Warningf(logTag, "unrecognized level_idc [str:%s, level_idc:%d]", str, levelIdc)
		return
	}

	// Parse profile_idc/profile_iop into a Profile.
	for _, pattern := range profilePatterns {
		if profileIdc == pattern.profileIdc && pattern.profileIop.IsMatch(profileIop) {
			return NewProfileLevelID(pattern.profile, level), true
		}
	}

	logger.Warningf(logTag, "unrecognized profile_idc/profile_iop combination [str:%s, profile_idc:%d, profile_iop:%d]",
		str, profileIdc, profileIop)
	return
}

// ProfileLevelIDToString returns the canonical string representation of id as
// three lower-case hex bytes. The second return value is false for profile
// level ids that cannot be represented.
func ProfileLevelIDToString(id ProfileLevelID) (string, bool) {
	str, ok := formatProfileLevelID(id)
	if !ok {
		if id.Level == Level1b {
			logger.Warningf(logTag, "level 1b is not allowed for profile %s", id.Profile)
		} else {
			logger.Warningf(logTag, "unrecognized profile %d", id.Profile)
		}
	}
	return str, ok
}

func formatProfileLevelID(id ProfileLevelID) (string, bool) {
	// Level 1b is signalled through the constraint set 3 flag, level_idc stays 0x0b.
	if id.Level == Level1b {
		switch id.Profile {
		case ProfileConstrainedBaseline:
			return "42f00b", true
		case ProfileBaseline:
			return "42100b", true
		case ProfileMain:
			return "4d100b", true
		default:
			return "", false
		}
	}

	var profileIdcIop string
	switch id.Profile {
	case ProfileConstrainedBaseline:
		profileIdcIop = "42e0"
	case ProfileBaseline:
		profileIdcIop = "4200"
	case ProfileMain:
		profileIdcIop = "4d00"
	case ProfileConstrainedHigh:
		profileIdcIop = "640c"
	case ProfileHigh:
		profileIdcIop = "6400"
	case ProfilePredictiveHigh444:
		profileIdcIop = "f400"
	default:
		return "", false
	}

	return fmt.Sprintf("%s%02x", profileIdcIop, uint8(id.Level)), true
}
