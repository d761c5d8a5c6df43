package h264profile

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/ugparu/h264profile/utils/logger"
)

func TestGenerateAnswerNoProfileLevelID(t *testing.T) {
	t.Parallel()

	answer, ok, err := GenerateProfileLevelIDStringForAnswer(nil, nil)
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, answer)

	answer, ok, err = GenerateProfileLevelIDStringForAnswer(
		Params{ParamLevelAsymmetryAllowed: "1"},
		Params{ParamPacketizationMode: "1"},
	)
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, answer)
}

func TestGenerateAnswerSymmetricLevel(t *testing.T) {
	t.Parallel()

	low := Params{ParamProfileLevelID: "42e015"}
	high := Params{ParamProfileLevelID: "42e01f"}

	answer, ok, err := GenerateProfileLevelIDStringForAnswer(low, high)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "42e015", answer)

	answer, ok, err = GenerateProfileLevelIDStringForAnswer(high, low)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "42e015", answer)
}

func TestGenerateAnswerLevelAsymmetry(t *testing.T) {
	t.Parallel()

	low := Params{ParamProfileLevelID: "42e015", ParamLevelAsymmetryAllowed: "1"}
	high := Params{ParamProfileLevelID: "42e01f", ParamLevelAsymmetryAllowed: 1}

	answer, ok, err := GenerateProfileLevelIDStringForAnswer(high, low)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "42e01f", answer)

	answer, ok, err = GenerateProfileLevelIDStringForAnswer(low, high)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "42e015", answer)

	// Both sides must allow asymmetry.
	answer, ok, err = GenerateProfileLevelIDStringForAnswer(high, Params{ParamProfileLevelID: "42e015"})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "42e015", answer)

	answer, ok, err = GenerateProfileLevelIDStringForAnswer(
		Params{ParamProfileLevelID: "42e01f", ParamLevelAsymmetryAllowed: true},
		Params{ParamProfileLevelID: "42e015", ParamLevelAsymmetryAllowed: "0"},
	)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "42e015", answer)
}

func TestGenerateAnswerDefaultSide(t *testing.T) {
	t.Parallel()

	answer, ok, err := GenerateProfileLevelIDStringForAnswer(nil, Params{ParamProfileLevelID: "42e02a"})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "42e01f", answer)

	answer, ok, err = GenerateProfileLevelIDStringForAnswer(Params{ParamProfileLevelID: "42e00d"}, Params{})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "42e00d", answer)
}

func TestGenerateAnswerLevel1b(t *testing.T) {
	t.Parallel()

	answer, ok, err := GenerateProfileLevelIDStringForAnswer(
		Params{ParamProfileLevelID: "42f00b"},
		Params{ParamProfileLevelID: "42e01f"},
	)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "42f00b", answer)
}

func TestGenerateAnswerInvalid(t *testing.T) {
	t.Parallel()

	_, _, err := GenerateProfileLevelIDStringForAnswer(
		Params{ParamProfileLevelID: "42e000"},
		Params{ParamProfileLevelID: "42e01f"},
	)
	require.ErrorIs(t, err, ErrInvalidLocalProfileLevelID)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = GenerateProfileLevelIDStringForAnswer(
		Params{ParamProfileLevelID: "42e01f"},
		Params{ParamProfileLevelID: "gggggg"},
	)
	require.ErrorIs(t, err, ErrInvalidRemoteProfileLevelID)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = GenerateProfileLevelIDStringForAnswer(
		Params{ParamProfileLevelID: "42e01f"},
		Params{ParamProfileLevelID: "640c1f"},
	)
	require.ErrorIs(t, err, ErrProfileMismatch)
	require.ErrorIs(t, err, ErrInvalidArgument)

	// Missing on one side means the default profile, ConstrainedBaseline.
	_, _, err = GenerateProfileLevelIDStringForAnswer(nil, Params{ParamProfileLevelID: "4d001f"})
	require.ErrorIs(t, err, ErrProfileMismatch)
}

func TestGenerateAnswerNoProfileLevelIDWarns(t *testing.T) {
	hook := test.NewLocal(logger.Base())
	defer hook.Reset()

	_, ok, err := GenerateProfileLevelIDStringForAnswer(Params{}, Params{ParamPacketizationMode: "1"})
	require.NoError(t, err)
	require.False(t, ok)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Contains(t, entry.Message, "profile-level-id missing in local and remote params")
}
