package sdp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ugparu/h264profile"
)

// FormatFmtp builds the parameter part of an a=fmtp line from params.
// Keys are sorted so the output is deterministic and parsable by ParseFmtp.
func FormatFmtp(params h264profile.Params) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := make([]string, 0, len(keys))
	for _, key := range keys {
		switch val := params[key].(type) {
		case nil:
			fields = append(fields, key)
		case bool:
			// level-asymmetry-allowed style flags are written as 0/1.
			if val {
				fields = append(fields, key+"=1")
			} else {
				fields = append(fields, key+"=0")
			}
		default:
			fields = append(fields, fmt.Sprintf("%s=%v", key, val))
		}
	}
	return strings.Join(fields, ";")
}

// WithProfileLevelID returns a copy of params with profile-level-id set to
// value, or removed when present is false.
func WithProfileLevelID(params h264profile.Params, value string, present bool) h264profile.Params {
	out := make(h264profile.Params, len(params)+1)
	for key, val := range params {
		out[key] = val
	}
	if present {
		out[h264profile.ParamProfileLevelID] = value
	} else {
		delete(out, h264profile.ParamProfileLevelID)
	}
	return out
}
