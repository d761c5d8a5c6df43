package webrtc

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pion/interceptor"
	"github.com/pion/webrtc/v4"
	"github.com/ugparu/h264profile"
	"github.com/ugparu/h264profile/utils/logger"
	"github.com/ugparu/h264profile/utils/sdp"
)

// clockRate is the RTP clock rate of video codecs.
const clockRate = 90000

// Bounds of the dynamic payload type range.
const (
	minDynamicPayloadType = 96
	maxDynamicPayloadType = 127
)

// Payload types used per profile-level-id: H264 and RTX for packetization-mode 1 and 0.
const payloadTypesPerID = 4

var ErrPayloadTypeRange = errors.New("webrtc: payload types exceed the dynamic range")

var videoRTCPFeedback = []webrtc.RTCPFeedback{
	{Type: "goog-remb", Parameter: ""},
	{Type: "ccm", Parameter: "fir"},
	{Type: "nack", Parameter: ""},
	{Type: "nack", Parameter: "pli"},
}

// Capability builds the H264 codec capability advertising id.
func Capability(id h264profile.ProfileLevelID, packetizationMode int, levelAsymmetryAllowed bool) (webrtc.RTPCodecCapability, error) {
	str, ok := h264profile.ProfileLevelIDToString(id)
	if !ok {
		return webrtc.RTPCodecCapability{}, fmt.Errorf("webrtc: profile %s with level %s is not representable", id.Profile, id.Level)
	}

	params := h264profile.Params{
		h264profile.ParamPacketizationMode: packetizationMode,
		h264profile.ParamProfileLevelID:    str,
	}
	if levelAsymmetryAllowed {
		params[h264profile.ParamLevelAsymmetryAllowed] = true
	}

	return webrtc.RTPCodecCapability{
		MimeType:     webrtc.MimeTypeH264,
		ClockRate:    clockRate,
		Channels:     0,
		SDPFmtpLine:  sdp.FormatFmtp(params),
		RTCPFeedback: videoRTCPFeedback,
	}, nil
}

// RegisterH264Codecs registers an H264 codec and its RTX codec for every id, with
// packetization-mode 1 first and then 0. Payload types are allocated
// sequentially starting at firstPayloadType.
func RegisterH264Codecs(m *webrtc.MediaEngine, ids []h264profile.ProfileLevelID, firstPayloadType webrtc.PayloadType) error {
	if firstPayloadType < minDynamicPayloadType ||
		int(firstPayloadType)+len(ids)*payloadTypesPerID-1 > maxDynamicPayloadType {
		return ErrPayloadTypeRange
	}

	pt := firstPayloadType
	for _, id := range ids {
		for _, mode := range []int{1, 0} {
			capability, err := Capability(id, mode, true)
			if err != nil {
				return err
			}

			for _, codec := range []webrtc.RTPCodecParameters{
				{
					RTPCodecCapability: capability,
					PayloadType:        pt,
				},
				{
					RTPCodecCapability: webrtc.RTPCodecCapability{
						MimeType:     webrtc.MimeTypeRTX,
						ClockRate:    clockRate,
						Channels:     0,
						SDPFmtpLine:  "apt=" + strconv.Itoa(int(pt)),
						RTCPFeedback: nil,
					},
					PayloadType: pt + 1,
				},
			} {
				if err = m.RegisterCodec(codec, webrtc.RTPCodecTypeVideo); err != nil {
					return err
				}
			}
			logger.Debugf("WEBRTC", "registered %s as %d [%s]", id, pt, capability.SDPFmtpLine)
			pt += 2
		}
	}
	return nil
}

// NewAPI returns a pion API whose media engine carries the H264 codecs of ids
// and the default interceptors, so the advertised nack, pli and remb feedback
// is served.
func NewAPI(ids []h264profile.ProfileLevelID, firstPayloadType webrtc.PayloadType) (*webrtc.API, error) {
	m := &webrtc.MediaEngine{}
	if err := RegisterH264Codecs(m, ids, firstPayloadType); err != nil {
		return nil, err
	}

	i := &interceptor.Registry{}
	if err := webrtc.RegisterDefaultInterceptors(m, i); err != nil {
		return nil, err
	}

	return webrtc.NewAPI(webrtc.WithMediaEngine(m), webrtc.WithInterceptorRegistry(i)), nil
}
