package webrtc

import (
	"errors"
	"strings"

	"github.com/pion/webrtc/v4"
	"github.com/ugparu/h264profile"
	"github.com/ugparu/h264profile/utils/sdp"
)

var ErrNotH264 = errors.New("webrtc: codec is not H264")

// ParamsFromCapability returns the fmtp parameters of c.
func ParamsFromCapability(c webrtc.RTPCodecCapability) h264profile.Params {
	return sdp.ParseFmtp(c.SDPFmtpLine)
}

// AnswerCapability returns the local capability with the profile-level-id that
// must be used in an answer to remote. profile-level-id is removed from the
// answer when neither side carries it. Errors wrapping
// h264profile.ErrInvalidArgument are returned for invalid or mismatching
// profile-level-ids.
func AnswerCapability(local, remote webrtc.RTPCodecCapability) (webrtc.RTPCodecCapability, error) {
	if !strings.EqualFold(local.MimeType, webrtc.MimeTypeH264) ||
		!strings.EqualFold(remote.MimeType, webrtc.MimeTypeH264) {
		return webrtc.RTPCodecCapability{}, ErrNotH264
	}

	localParams := ParamsFromCapability(local)
	str, ok, err := h264profile.GenerateProfileLevelIDStringForAnswer(localParams, ParamsFromCapability(remote))
	if err != nil {
		return webrtc.RTPCodecCapability{}, err
	}

	answer := local
	answer.SDPFmtpLine = sdp.FormatFmtp(sdp.WithProfileLevelID(localParams, str, ok))
	return answer, nil
}
