package api

import (
	"errors"
	"net/http"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/constants"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/service"

	"github.com/gin-gonic/gin"
)

// GetStats returns progress counters for a session's game.
func (h *CallerHandler) GetStats(c *gin.Context) {
	key := c.Param("sessionKey")
	stats, err := service.GetStats(h.repo, key)
	if errors.Is(err, service.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedLoadGame})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetCalledNumbers returns the read-back text for the call history.
func (h *CallerHandler) GetCalledNumbers(c *gin.Context) {
	key := c.Param("sessionKey")
	text, err := service.CalledNumbers(h.repo, key)
	if errors.Is(err, service.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedLoadGame})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: text})
}

type VerifyCardPayload struct {
	Numbers []int `json:"numbers"`
}

// VerifyCard checks whether every number on a candidate card has been
// called in this session.
func (h *CallerHandler) VerifyCard(c *gin.Context) {
	key := c.Param("sessionKey")
	var req VerifyCardPayload
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Numbers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	for _, n := range req.Numbers {
		if n < 1 || n > game.PoolSize {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCardNumbersInvalid})
			return
		}
	}

	winner, err := service.VerifyCard(h.repo, key, req.Numbers)
	if errors.Is(err, service.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedLoadGame})
		return
	}

	msg := "Lo siento, aún faltan números por cantar en ese cartón."
	if winner {
		msg = "¡Bingo! Todos los números de ese cartón han sido cantados."
	}
	c.JSON(http.StatusOK, gin.H{
		"winner":                 winner,
		constants.JSONKeyMessage: msg,
	})
}
