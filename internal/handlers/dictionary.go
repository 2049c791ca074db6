package handlers

import (
	"net/http"

	"github.com/hypermodeinc/ship-hypercategories/internal/services"

	"github.com/gin-gonic/gin"
)

type DictionaryHandler struct {
	dictionary services.Dictionary
}

func NewDictionaryHandler(dictionary services.Dictionary) *DictionaryHandler {
	return &DictionaryHandler{dictionary: dictionary}
}

type WordCheckResponse struct {
	Word   string `json:"word"`
	IsWord bool   `json:"is_word"`
}

// CheckWord godoc
// @Summary      Check whether a word exists in the dictionary
// @Tags         dictionary
// @Produce      json
// @Param        word path string true "Word to check"
// @Success      200 {object} WordCheckResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/dictionary/{word} [get]
func (h *DictionaryHandler) CheckWord(c *gin.Context) {
	word := c.Param("word")

	isWord, err := h.dictionary.IsWord(c.Request.Context(), word)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, WordCheckResponse{Word: word, IsWord: isWord})
}
