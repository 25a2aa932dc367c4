package api

import (
	"errors"
	"net/http"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/constants"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/dedupe"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/logging"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StartGamePayload struct {
	SessionKey string `json:"session_key"`
	Speed      string `json:"speed"`
}

// StartGame creates (or resets) a session and calls the first batch of
// balls. When the caller supplies no session key a fresh one is generated.
func (h *CallerHandler) StartGame(c *gin.Context) {
	var req StartGamePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	key := req.SessionKey
	if key == "" {
		key = uuid.NewString()
	}

	v, err, _ := dedupe.TurnGroup.Do(key, func() (interface{}, error) {
		return service.StartGame(h.repo, newRNG(), key, game.Speed(req.Speed), h.cfg)
	})
	if err != nil {
		logging.Error("start game failed", err, logging.Fields{constants.LogFieldSessionKey: key})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateGame})
		return
	}
	res := v.(*service.TurnResult)

	c.JSON(http.StatusCreated, gin.H{
		constants.JSONKeySession:  key,
		constants.JSONKeySpeech:   res.Speech,
		constants.JSONKeyReprompt: res.Reprompt,
		"active":                  res.Session.Active,
		"called":                  len(res.Session.CalledNumbers),
	})
}

// ContinueGame resumes calling for an active session. A missing or ended
// game is not a failure: the response invites the player to start over.
func (h *CallerHandler) ContinueGame(c *gin.Context) {
	key := c.Param("sessionKey")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrSessionKeyRequired})
		return
	}

	v, err, _ := dedupe.TurnGroup.Do(key, func() (interface{}, error) {
		return service.ContinueGame(h.repo, newRNG(), key, h.cfg)
	})
	if errors.Is(err, service.ErrNoActiveGame) {
		c.JSON(http.StatusOK, gin.H{
			constants.JSONKeySpeech:   `No hay ninguna partida activa. Di "nueva partida" para comenzar.`,
			constants.JSONKeyReprompt: `Di "nueva partida" para comenzar a jugar.`,
			"active":                  false,
		})
		return
	}
	if err != nil {
		logging.Error("continue game failed", err, logging.Fields{constants.LogFieldSessionKey: key})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedLoadGame})
		return
	}
	res := v.(*service.TurnResult)

	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeySpeech:   res.Speech,
		constants.JSONKeyReprompt: res.Reprompt,
		"active":                  res.Session.Active,
		"called":                  len(res.Session.CalledNumbers),
	})
}

// PauseGame suspends an active session.
func (h *CallerHandler) PauseGame(c *gin.Context) {
	key := c.Param("sessionKey")
	s, err := service.PauseGame(h.repo, key)
	if errors.Is(err, service.ErrNoActiveGame) {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveGame})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyMessage: `Partida en pausa. Di "sigue" cuando quieras continuar.`,
		"called":                 len(s.CalledNumbers),
	})
}

// StopGame ends an active session permanently.
func (h *CallerHandler) StopGame(c *gin.Context) {
	key := c.Param("sessionKey")
	s, err := service.StopGame(h.repo, key)
	if errors.Is(err, service.ErrNoActiveGame) {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveGame})
		return
	}
	stats := game.Stats(s.CalledNumbers, game.PoolSize)
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyMessage: "Partida terminada. ¡Gracias por jugar!",
		"stats":                  stats,
	})
}
