package sdp

import (
	"strings"
	"testing"

	psdp "github.com/pion/sdp/v3"
	"github.com/stretchr/testify/require"
	"github.com/ugparu/h264profile"
)

const offer = "v=0\r\n" +
	"o=- 4215775240449105457 2 IN IP4 127.0.0.1\r\n" +
	"s=-\r\n" +
	"t=0 0\r\n" +
	"m=audio 9 UDP/TLS/RTP/SAVPF 111\r\n" +
	"c=IN IP4 0.0.0.0\r\n" +
	"a=rtpmap:111 opus/48000/2\r\n" +
	"a=fmtp:111 minptime=10;useinbandfec=1\r\n" +
	"m=video 9 UDP/TLS/RTP/SAVPF 96 102 106 112\r\n" +
	"c=IN IP4 0.0.0.0\r\n" +
	"a=rtpmap:96 VP8/90000\r\n" +
	"a=rtpmap:102 H264/90000\r\n" +
	"a=fmtp:102 level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42001f\r\n" +
	"a=rtpmap:106 H264/90000\r\n" +
	"a=fmtp:106 level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e01f\r\n" +
	"a=rtpmap:112 h264/90000\r\n" +
	"a=fmtp:112 packetization-mode=1;profile-level-id=64001F\r\n"

func parseOffer(t *testing.T) *psdp.SessionDescription {
	t.Helper()
	sd := &psdp.SessionDescription{}
	require.NoError(t, sd.Unmarshal([]byte(offer)))
	return sd
}

func TestParseFmtp(t *testing.T) {
	t.Parallel()

	params := ParseFmtp("packetization-mode=1; sprop-parameter-sets=Z2QAH6zZQFAFuhAAAAMAEAAAAwPI8YMZYA==,aO+8sA==; Profile-Level-Id=64001F;")
	require.Equal(t, h264profile.Params{
		"packetization-mode":   "1",
		"sprop-parameter-sets": "Z2QAH6zZQFAFuhAAAAMAEAAAAwPI8YMZYA==,aO+8sA==",
		"profile-level-id":     "64001F",
	}, params)

	id, ok := h264profile.ParseSdpProfileLevelID(params)
	require.True(t, ok)
	require.Equal(t, h264profile.NewProfileLevelID(h264profile.ProfileHigh, h264profile.Level3_1), id)

	require.Empty(t, ParseFmtp(""))
	require.Equal(t, h264profile.Params{"x-flag": nil, "x-empty": ""}, ParseFmtp("x-flag;x-empty="))
	require.Equal(t, "packetization-mode=1;x-flag", FormatFmtp(ParseFmtp("x-flag;packetization-mode=1")))
}

func TestFormatFmtp(t *testing.T) {
	t.Parallel()

	line := FormatFmtp(h264profile.Params{
		h264profile.ParamProfileLevelID:        "42e01f",
		h264profile.ParamPacketizationMode:     1,
		h264profile.ParamLevelAsymmetryAllowed: true,
	})
	require.Equal(t, "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e01f", line)

	params := ParseFmtp(line)
	require.True(t, h264profile.IsLevelAsymmetryAllowed(params))
	require.Equal(t, "42e01f", params[h264profile.ParamProfileLevelID])
}

func TestWithProfileLevelID(t *testing.T) {
	t.Parallel()

	in := h264profile.Params{h264profile.ParamProfileLevelID: "42e01f", "packetization-mode": "1"}

	out := WithProfileLevelID(in, "42e015", true)
	require.Equal(t, "42e015", out[h264profile.ParamProfileLevelID])
	require.Equal(t, "42e01f", in[h264profile.ParamProfileLevelID])

	out = WithProfileLevelID(in, "", false)
	_, ok := out[h264profile.ParamProfileLevelID]
	require.False(t, ok)
	require.Equal(t, "1", out["packetization-mode"])
}

func TestH264Params(t *testing.T) {
	t.Parallel()

	sd := parseOffer(t)

	params, err := H264Params(sd, 106)
	require.NoError(t, err)
	id, ok := h264profile.ParseSdpProfileLevelID(params)
	require.True(t, ok)
	require.Equal(t, h264profile.DefaultProfileLevelID, id)
	require.True(t, h264profile.IsLevelAsymmetryAllowed(params))

	_, err = H264Params(sd, 96)
	require.ErrorIs(t, err, ErrNotH264)

	_, err = H264Params(sd, 120)
	require.Error(t, err)
}

func TestH264Formats(t *testing.T) {
	t.Parallel()

	formats := H264Formats(parseOffer(t))
	require.Len(t, formats, 3)

	pts := make([]uint8, 0, len(formats))
	ids := make([]string, 0, len(formats))
	for _, f := range formats {
		pts = append(pts, f.PayloadType)
		ids = append(ids, strings.ToLower(f.Params[h264profile.ParamProfileLevelID].(string)))
	}
	require.Equal(t, []uint8{102, 106, 112}, pts)
	require.Equal(t, []string{"42001f", "42e01f", "64001f"}, ids)
}
