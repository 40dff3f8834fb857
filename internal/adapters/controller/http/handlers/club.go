package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/campushub/club-directory/internal/adapters/logger"
	"github.com/campushub/club-directory/internal/domain/dto"
	"github.com/campushub/club-directory/internal/domain/entity"
	"github.com/gin-gonic/gin"
)

type clubService interface {
	Create(ctx context.Context, token string, input dto.CreateClub) (*entity.Club, error)
	Update(ctx context.Context, token string, id string, input dto.UpdateClub) (*entity.Club, error)
	Delete(ctx context.Context, token string, id string) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	GetAll(ctx context.Context) []entity.Club
}

type ClubHandler struct {
	service clubService
	logger  *logger.Logger
}

func NewClubHandler(service clubService, log *logger.Logger) *ClubHandler {
	return &ClubHandler{
		service: service,
		logger:  log,
	}
}

// Create handles club creation.
// POST /api/v1/clubs
func (h *ClubHandler) Create(c *gin.Context) {
	var input dto.CreateClub
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.ClubResponse{})
		return
	}

	club, err := h.service.Create(c.Request.Context(), bearerToken(c), input)
	if err != nil {
		h.logger.Debugf("create club refused: %v", err)
		c.JSON(http.StatusOK, dto.ClubResponse{})
		return
	}
	c.JSON(http.StatusOK, dto.ClubResponse{Success: true, Club: dto.NewClub(club)})
}

// Update handles a partial club update.
// PUT /api/v1/clubs/:id
func (h *ClubHandler) Update(c *gin.Context) {
	var input dto.UpdateClub
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.ClubResponse{})
		return
	}

	club, err := h.service.Update(c.Request.Context(), bearerToken(c), c.Param("id"), input)
	if err != nil {
		h.logger.Debugf("update club %s refused: %v", c.Param("id"), err)
		c.JSON(http.StatusOK, dto.ClubResponse{})
		return
	}
	c.JSON(http.StatusOK, dto.ClubResponse{Success: true, Club: dto.NewClub(club)})
}

// Delete handles club deletion and echoes the deleted club.
// DELETE /api/v1/clubs/:id
func (h *ClubHandler) Delete(c *gin.Context) {
	club, err := h.service.Delete(c.Request.Context(), bearerToken(c), c.Param("id"))
	if err != nil {
		h.logger.Debugf("delete club %s refused: %v", c.Param("id"), err)
		c.JSON(http.StatusOK, dto.ClubResponse{})
		return
	}
	c.JSON(http.StatusOK, dto.ClubResponse{Success: true, Club: dto.NewClub(club)})
}

// Get handles a public single-club read.
// GET /api/v1/clubs/:id
func (h *ClubHandler) Get(c *gin.Context) {
	club, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, dto.ClubResponse{})
		return
	}
	c.JSON(http.StatusOK, dto.ClubResponse{Success: true, Club: dto.NewClub(club)})
}

// GetAll handles the public club listing.
// GET /api/v1/clubs
func (h *ClubHandler) GetAll(c *gin.Context) {
	clubs := h.service.GetAll(c.Request.Context())
	c.JSON(http.StatusOK, dto.ClubsResponse{Success: true, Clubs: dto.NewClubs(clubs)})
}

// bearerToken extracts the opaque access token. A missing header yields an
// empty token, which the service refuses like any unknown secret.
func bearerToken(c *gin.Context) string {
	token := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
}
