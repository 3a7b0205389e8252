package controllers

import (
	"net/http"
	"strings"

	"clinicflash-backend/storage"
	"clinicflash-backend/utils"

	"github.com/gin-gonic/gin"
)

type PhrasesController struct {
	Phrases *storage.PhraseStore
}

type SavePhraseInput struct {
	Text string `json:"text" binding:"required"`
}

// GetPhrases lists saved phrases, most used first.
func (ctl *PhrasesController) GetPhrases(c *gin.Context) {
	phrases, err := ctl.Phrases.OrderedByUsage()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load phrases")
		return
	}
	c.JSON(http.StatusOK, gin.H{"phrases": phrases})
}

// SavePhrase stores a phrase. Duplicates bump the existing usage count;
// past the cap the least-used phrase is evicted.
func (ctl *PhrasesController) SavePhrase(c *gin.Context) {
	var input SavePhraseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "text must not be empty")
		return
	}

	phrase, err := ctl.Phrases.Save(text)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save phrase")
		return
	}
	c.JSON(http.StatusCreated, phrase)
}

func (ctl *PhrasesController) DeletePhrase(c *gin.Context) {
	if err := ctl.Phrases.Delete(c.Param("id")); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete phrase")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Phrase deleted"})
}

// UsePhrase records one use of a phrase, feeding the eviction order.
func (ctl *PhrasesController) UsePhrase(c *gin.Context) {
	if err := ctl.Phrases.IncrementUsage(c.Param("id")); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update phrase")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usage recorded"})
}

func (ctl *PhrasesController) ResetPhrases(c *gin.Context) {
	if err := ctl.Phrases.Reset(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reset phrases")
		return
	}
	phrases, err := ctl.Phrases.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load phrases")
		return
	}
	c.JSON(http.StatusOK, gin.H{"phrases": phrases})
}
