package handlers

import (
	"errors"
	"net/http"

	"github.com/hypermodeinc/ship-hypercategories/internal/repository"
	"github.com/hypermodeinc/ship-hypercategories/internal/services"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	gameService *services.GameService
}

func NewSubmissionHandler(gameService *services.GameService) *SubmissionHandler {
	return &SubmissionHandler{gameService: gameService}
}

type SubmitRequest struct {
	Player    string   `json:"player" binding:"required" example:"alice"`
	Responses []string `json:"responses" binding:"required"`
}

type SubmitResponse struct {
	SubmissionID uint                 `json:"submission_id"`
	Evaluation   *services.Evaluation `json:"evaluation"`
}

// Submit godoc
// @Summary      Submit responses for a game
// @Description  One word per category; each is checked for starting letter, dictionary presence and category entailment
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id path int true "Game ID"
// @Param        request body SubmitRequest true "Player responses"
// @Success      201 {object} SubmitResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{id}/submissions [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	gameID, err := parseGameID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id"})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	sub, evaluation, err := h.gameService.SubmitResponses(c.Request.Context(), gameID, req.Player, req.Responses)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SubmitResponse{SubmissionID: sub.ID, Evaluation: evaluation})
}

type SimulateRequest struct {
	Player string `json:"player" binding:"required" example:"house"`
}

// Simulate godoc
// @Summary      Let the AI answer for a player
// @Description  Generate one word per category with the text-generation model and submit them under the given name
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id path int true "Game ID"
// @Param        request body SimulateRequest true "Player name"
// @Success      201 {object} SubmitResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{id}/simulate [post]
func (h *SubmissionHandler) Simulate(c *gin.Context) {
	gameID, err := parseGameID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id"})
		return
	}

	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.gameService.SimulatePlayer(c.Request.Context(), gameID, req.Player)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SubmitResponse{SubmissionID: sub.ID})
}
