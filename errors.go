package h264profile

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every error returned when the caller of
// GenerateProfileLevelIDStringForAnswer violates its preconditions.
var ErrInvalidArgument = errors.New("h264profile: invalid argument")

var (
	ErrInvalidLocalProfileLevelID  = fmt.Errorf("%w: invalid local profile-level-id", ErrInvalidArgument)
	ErrInvalidRemoteProfileLevelID = fmt.Errorf("%w: invalid remote profile-level-id", ErrInvalidArgument)
	ErrProfileMismatch             = fmt.Errorf("%w: H264 profile mismatch", ErrInvalidArgument)
)
