package h264profile

import (
	"fmt"

	"github.com/ugparu/h264profile/utils/logger"
)

// Profile represents an H.264 profile that can be signalled with profile-level-id.
type Profile uint8

// Supported profiles.
const (
	ProfileConstrainedBaseline Profile = iota + 1
	ProfileBaseline
	ProfileMain
	ProfileConstrainedHigh
	ProfileHigh
	ProfilePredictiveHigh444
)

// Level represents an H.264 level.
// All values are equal to ten times the level number, except level 1b which is special.
type Level uint8

// Supported levels.
const (
	Level1b  Level = 0
	Level1   Level = 10
	Level1_1 Level = 11
	Level1_2 Level = 12
	Level1_3 Level = 13
	Level2   Level = 20
	Level2_1 Level = 21
	Level2_2 Level = 22
	Level3   Level = 30
	Level3_1 Level = 31
	Level3_2 Level = 32
	Level4   Level = 40
	Level4_1 Level = 41
	Level4_2 Level = 42
	Level5   Level = 50
	Level5_1 Level = 51
	Level5_2 Level = 52
)

var profileNames = map[Profile]string{
	ProfileConstrainedBaseline: "ConstrainedBaseline",
	ProfileBaseline:            "Baseline",
	ProfileMain:                "Main",
	ProfileConstrainedHigh:     "ConstrainedHigh",
	ProfileHigh:                "High",
	ProfilePredictiveHigh444:   "PredictiveHigh444",
}

var levelNames = map[Level]string{
	Level1b:  "1b",
	Level1:   "1",
	Level1_1: "1.1",
	Level1_2: "1.2",
	Level1_3: "1.3",
	Level2:   "2",
	Level2_1: "2.1",
	Level2_2: "2.2",
	Level3:   "3",
	Level3_1: "3.1",
	Level3_2: "3.2",
	Level4:   "4",
	Level4_1: "4.1",
	Level4_2: "4.2",
	Level5:   "5",
	Level5_1: "5.1",
	Level5_2: "5.2",
}

// ProfileToString returns a human friendly name for the given profile.
func ProfileToString(profile Profile) (string, bool) {
	name, ok := profileNames[profile]
	if !ok {
		logger.Warningf(logTag, "unrecognized profile %d", profile)
	}
	return name, ok
}

// LevelToString returns a human friendly name for the given level.
func LevelToString(level Level) (string, bool) {
	name, ok := levelNames[level]
	if !ok {
		logger.Warningf(logTag, "unrecognized level %d", level)
	}
	return name, ok
}

// ProfileFromString is the inverse of ProfileToString.
func ProfileFromString(name string) (Profile, bool) {
	for profile, n := range profileNames {
		if n == name {
			return profile, true
		}
	}
	return 0, false
}

// LevelFromString is the inverse of LevelToString.
func LevelFromString(name string) (Level, bool) {
	for level, n := range levelNames {
		if n == name {
			return level, true
		}
	}
	return 0, false
}

func (p Profile) String() string {
	if name, ok := profileNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Profile(%d)", uint8(p))
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// ProfileLevelID is a parsed H.264 profile-level-id value.
type ProfileLevelID struct {
	Profile Profile
	Level   Level
}

// NewProfileLevelID creates a ProfileLevelID from its parts.
func NewProfileLevelID(profile Profile, level Level) ProfileLevelID {
	return ProfileLevelID{
		Profile: profile,
		Level:   level,
	}
}

// DefaultProfileLevelID is used when SDP parameters carry no profile-level-id.
//
// The default should really be profile Baseline and level 1 according to
// RFC 6184 section 8.1. Older WebRTC endpoints send external codecs without
// any parameters, so profile ConstrainedBaseline level 3.1 is kept for
// compatibility with them. See crbug.com/webrtc/6337.
var DefaultProfileLevelID = ProfileLevelID{
	Profile: ProfileConstrainedBaseline,
	Level:   Level3_1,
}

// String returns the canonical profile-level-id, or an empty string if the
// pair cannot be represented. It never logs.
func (id ProfileLevelID) String() string {
	str, _ := formatProfileLevelID(id)
	return str
}
