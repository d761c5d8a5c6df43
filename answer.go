package h264profile

import (
	"github.com/ugparu/h264profile/utils/logger"
)

// GenerateProfileLevelIDStringForAnswer generates the profile-level-id to be used
// in an SDP answer, based on local supported parameters and remote offered
// parameters. Both represent sendrecv media descriptions, i.e. they are a mix of
// both encode and decode capabilities.
//
// Each supported H.264 profile should be listed explicitly among the local
// codecs, and each local codec tested against the remote codec one at a time.
// This function must only be called once the profiles are known to be equal, it
// does not handle profile intersection. Only the level part of profile-level-id
// and level-asymmetry-allowed take part in the negotiation.
//
// The second return value is false when the answer must not carry
// profile-level-id. An error wrapping ErrInvalidArgument is returned when a side
// carries an invalid profile-level-id or the profiles differ.
func GenerateProfileLevelIDStringForAnswer(localSupported, remoteOffered Params) (string, bool, error) {
	// If both local and remote params do not contain profile-level-id, they are
	// both using the default profile. In this case, don't return anything.
	if !hasProfileLevelID(localSupported) && !hasProfileLevelID(remoteOffered) {
		logger.Warning(logTag, "profile-level-id missing in local and remote params")
		return "", false, nil
	}

	local, ok := ParseSdpProfileLevelID(localSupported)
	if !ok {
		return "", false, ErrInvalidLocalProfileLevelID
	}
	remote, ok := ParseSdpProfileLevelID(remoteOffered)
	if !ok {
		return "", false, ErrInvalidRemoteProfileLevelID
	}
	if local.Profile != remote.Profile {
		return "", false, ErrProfileMismatch
	}

	levelAsymmetryAllowed := IsLevelAsymmetryAllowed(localSupported) &&
		IsLevelAsymmetryAllowed(remoteOffered)

	// When level asymmetry is not allowed, level upgrade is not allowed, i.e.,
	// the level in the answer must be equal to or lower than the level in the offer.
	answerLevel := MinLevel(local.Level, remote.Level)
	if levelAsymmetryAllowed {
		answerLevel = local.Level
	}

	logger.Debugf(logTag, "answer [profile:%s, level:%s]", local.Profile, answerLevel)

	str, ok := ProfileLevelIDToString(NewProfileLevelID(local.Profile, answerLevel))
	return str, ok, nil
}
