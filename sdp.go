package h264profile

import (
	"math"
	"reflect"

	"github.com/ugparu/h264profile/utils/logger"
)

// Params is an already parsed SDP fmtp key-value mapping.
type Params map[string]any

// hasProfileLevelID reports whether params carry a profile-level-id. Empty
// strings, false and numeric zero count as missing.
func hasProfileLevelID(params Params) bool {
	switch v := params[ParamProfileLevelID].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return !rv.IsZero()
		case reflect.Float32, reflect.Float64:
			return rv.Float() != 0 && !math.IsNaN(rv.Float())
		default:
			return true
		}
	}
}

// ParseSdpProfileLevelID parses the profile-level-id contained in an SDP
// key-value map. DefaultProfileLevelID is returned if the profile-level-id key
// is missing. The second return value is false if the key is present but the
// value is invalid. A nil map is treated as an empty one.
func ParseSdpProfileLevelID(params Params) (ProfileLevelID, bool) {
	if !hasProfileLevelID(params) {
		return DefaultProfileLevelID, true
	}

	str, ok := params[ParamProfileLevelID].(string)
	if !ok {
		logger.Warningf(logTag, "profile-level-id is not a string [%T]", params[ParamProfileLevelID])
		return ProfileLevelID{}, false
	}
	return ParseProfileLevelID(str)
}

// IsLevelAsymmetryAllowed reports whether level-asymmetry-allowed is set to 1 or true.
func IsLevelAsymmetryAllowed(params Params) bool {
	switch v := params[ParamLevelAsymmetryAllowed].(type) {
	case bool:
		return v
	case string:
		return v == "1"
	case int:
		return v == 1
	case int8:
		return v == 1
	case int16:
		return v == 1
	case int32:
		return v == 1
	case int64:
		return v == 1
	case uint:
		return v == 1
	case uint8:
		return v == 1
	case uint16:
		return v == 1
	case uint32:
		return v == 1
	case uint64:
		return v == 1
	case float32:
		return v == 1
	case float64:
		return v == 1
	default:
		return false
	}
}

// IsSameProfile returns true if the parameters have the same H.264 profile
// (Baseline, High, etc). Levels are not compared.
func IsSameProfile(params1, params2 Params) bool {
	id1, ok1 := ParseSdpProfileLevelID(params1)
	id2, ok2 := ParseSdpProfileLevelID(params2)
	return ok1 && ok2 && id1.Profile == id2.Profile
}

// IsSameProfileAndLevel returns true if the parameters have the same H.264
// profile and the same level.
func IsSameProfileAndLevel(params1, params2 Params) bool {
	id1, ok1 := ParseSdpProfileLevelID(params1)
	id2, ok2 := ParseSdpProfileLevelID(params2)
	return ok1 && ok2 && id1 == id2
}
