package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hypermodeinc/ship-hypercategories/internal/models"
	"github.com/hypermodeinc/ship-hypercategories/internal/repository"
	"github.com/hypermodeinc/ship-hypercategories/internal/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService        *services.GameService
	leaderboardService *services.LeaderboardService
}

func NewGameHandler(gameService *services.GameService, leaderboardService *services.LeaderboardService) *GameHandler {
	return &GameHandler{gameService: gameService, leaderboardService: leaderboardService}
}

type GameResponse struct {
	ID         uint     `json:"id"`
	Letter     string   `json:"letter"`
	Categories []string `json:"categories"`
}

func gameResponse(game *models.Game) GameResponse {
	return GameResponse{
		ID:         game.ID,
		Letter:     game.Letter,
		Categories: game.CategoryList(),
	}
}

// CreateGame godoc
// @Summary      Start a new game
// @Description  Pick a random letter and five random categories; the AI opponent answers immediately when configured
// @Tags         games
// @Produce      json
// @Success      201 {object} GameResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	game, err := h.gameService.StartGame(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gameResponse(game))
}

// GetGame godoc
// @Summary      Get game info
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	gameID, err := parseGameID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id"})
		return
	}

	game, err := h.gameService.GetGame(c.Request.Context(), gameID)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gameResponse(game))
}

// GetLeaderboard godoc
// @Summary      Get the ranked leaderboard
// @Description  Recompute every player's score, detect duplicate answers across players, and rank by score with earlier submissions winning ties
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} services.Leaderboard
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/games/{id}/leaderboard [get]
func (h *GameHandler) GetLeaderboard(c *gin.Context) {
	gameID, err := parseGameID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id"})
		return
	}

	board, err := h.leaderboardService.BuildLeaderboard(c.Request.Context(), gameID)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, board)
}

func parseGameID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

func statusFor(err error) int {
	if errors.Is(err, repository.ErrGameNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
