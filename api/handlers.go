package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ugparu/h264profile"
	"github.com/ugparu/h264profile/utils/logger"
	"github.com/ugparu/h264profile/utils/sdp"
)

type profileLevelIDResponse struct {
	Profile   string `json:"profile"`
	Level     string `json:"level"`
	Canonical string `json:"canonical"`
}

type encodeRequest struct {
	Profile string `json:"profile" binding:"required"`
	Level   string `json:"level" binding:"required"`
}

type answerRequest struct {
	Local  string `json:"local"`
	Remote string `json:"remote"`
}

type answerResponse struct {
	ProfileLevelID string `json:"profile_level_id"`
	Present        bool   `json:"present"`
}

type levelResponse struct {
	Level string `json:"level"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errUnrecognized = errors.New("unrecognized profile-level-id")

func getProfileLevelID(c *gin.Context) {
	id, ok := h264profile.ParseProfileLevelID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse{Error: errUnrecognized.Error()})
		return
	}
	c.JSON(http.StatusOK, profileLevelIDResponse{
		Profile:   id.Profile.String(),
		Level:     id.Level.String(),
		Canonical: id.String(),
	})
}

func postProfileLevelID(c *gin.Context) {
	var req encodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	profile, ok := h264profile.ProfileFromString(req.Profile)
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "unrecognized profile " + req.Profile})
		return
	}
	level, ok := h264profile.LevelFromString(req.Level)
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "unrecognized level " + req.Level})
		return
	}

	id := h264profile.NewProfileLevelID(profile, level)
	str, ok := h264profile.ProfileLevelIDToString(id)
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "profile " + req.Profile + " cannot use level " + req.Level})
		return
	}
	c.JSON(http.StatusOK, profileLevelIDResponse{
		Profile:   req.Profile,
		Level:     req.Level,
		Canonical: str,
	})
}

func postAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	str, ok, err := h264profile.GenerateProfileLevelIDStringForAnswer(sdp.ParseFmtp(req.Local), sdp.ParseFmtp(req.Remote))
	if err != nil {
		logger.Debugf("API", "answer rejected: %v", err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, answerResponse{
		ProfileLevelID: str,
		Present:        ok,
	})
}

func getSupportedLevel(c *gin.Context) {
	pixels, err := strconv.Atoi(c.Query("pixels"))
	if err != nil || pixels < 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid pixels"})
		return
	}
	fps, err := strconv.ParseFloat(c.Query("fps"), 64)
	if err != nil || fps < 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid fps"})
		return
	}

	level, ok := h264profile.SupportedLevel(pixels, fps)
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "no level supported"})
		return
	}
	c.JSON(http.StatusOK, levelResponse{Level: level.String()})
}
