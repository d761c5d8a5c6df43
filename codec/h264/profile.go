package h264

import (
	"fmt"
	"strings"

	"github.com/ugparu/h264profile"
)

// NaluSPS represents the Network Abstraction Layer Unit (NALU) type for Sequence Parameter Set.
const NaluSPS = 7

// Common magic numbers used in the package
const (
	// Bit masks
	maskNaluType = 0x1f

	// minSPSSize covers the NAL header, profile_idc, constraint flags and level_idc.
	minSPSSize = 4

	// minAVCRecordSize is the minimum size of an AVCDecoderConfigurationRecord.
	minAVCRecordSize = 7

	// avcConfigurationVersion is the only defined configurationVersion of avcC.
	avcConfigurationVersion = 1
)

// FromSPS returns the profile-level-id signalled by the header of an SPS NAL
// unit (profile_idc, constraint flags and level_idc). The payload itself is not parsed.
func FromSPS(sps []byte) (h264profile.ProfileLevelID, bool) {
	if len(sps) < minSPSSize || sps[0]&maskNaluType != NaluSPS {
		return h264profile.ProfileLevelID{}, false
	}
	return fromBytes(sps[1], sps[2], sps[3])
}

// FromDecoderConfRecord returns the profile-level-id signalled by an
// AVCDecoderConfigurationRecord (AVCProfileIndication, profile_compatibility
// and AVCLevelIndication).
func FromDecoderConfRecord(record []byte) (h264profile.ProfileLevelID, bool) {
	if len(record) < minAVCRecordSize || record[0] != avcConfigurationVersion {
		return h264profile.ProfileLevelID{}, false
	}
	return fromBytes(record[1], record[2], record[3])
}

// Tag returns the RFC 6381 codecs parameter of id, e.g. avc1.42E01F.
func Tag(id h264profile.ProfileLevelID) (string, bool) {
	str, ok := h264profile.ProfileLevelIDToString(id)
	if !ok {
		return "", false
	}
	return "avc1." + strings.ToUpper(str), true
}

func fromBytes(profileIdc, profileIop, levelIdc byte) (h264profile.ProfileLevelID, bool) {
	return h264profile.ParseProfileLevelID(fmt.Sprintf("%02x%02x%02x", profileIdc, profileIop, levelIdc))
}
