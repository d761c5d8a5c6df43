package sdp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	psdp "github.com/pion/sdp/v3"
	"github.com/ugparu/h264profile"
)

// EncodingH264 is the rtpmap encoding name of H.264.
const EncodingH264 = "H264"

// ErrNotH264 is returned when a payload type is mapped to another codec.
var ErrNotH264 = errors.New("sdp: payload type is not H264")

// Format is an H.264 payload type together with its fmtp parameters.
type Format struct {
	PayloadType uint8
	Params      h264profile.Params
}

// ParseFmtp parses the parameters of an a=fmtp line, without the payload type,
// e.g. "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e01f".
// Keys are lower-cased, values are kept as strings. A token without "=" is
// stored with a nil value so FormatFmtp writes it back as a bare key.
func ParseFmtp(line string) h264profile.Params {
	params := h264profile.Params{}
	for _, field := range strings.Split(line, ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		key, val, found := strings.Cut(field, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if !found {
			params[key] = nil
			continue
		}
		params[key] = strings.TrimSpace(val)
	}
	return params
}

// H264Params returns the fmtp parameters of the H.264 codec mapped to payloadType.
func H264Params(sd *psdp.SessionDescription, payloadType uint8) (h264profile.Params, error) {
	codec, err := sd.GetCodecForPayloadType(payloadType)
	if err != nil {
		return nil, fmt.Errorf("sdp: payload type %d: %w", payloadType, err)
	}
	if !strings.EqualFold(codec.Name, EncodingH264) {
		return nil, fmt.Errorf("%w: %d is %s", ErrNotH264, payloadType, codec.Name)
	}
	return ParseFmtp(codec.Fmtp), nil
}

// H264Formats returns every H.264 payload type of the video media descriptions
// of sd, in the order they are listed.
func H264Formats(sd *psdp.SessionDescription) (formats []Format) {
	for _, md := range sd.MediaDescriptions {
		if md.MediaName.Media != "video" {
			continue
		}
		for _, f := range md.MediaName.Formats {
			pt, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				continue
			}
			params, err := H264Params(sd, uint8(pt))
			if err != nil {
				continue
			}
			formats = append(formats, Format{
				PayloadType: uint8(pt),
				Params:      params,
			})
		}
	}
	return
}
