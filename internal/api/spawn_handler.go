package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udisondev/spawnpoint/internal/model"
	"github.com/udisondev/spawnpoint/internal/spawn"
)

// Allocator is the engine surface the handler invokes.
type Allocator interface {
	Allocate(ctx context.Context, req spawn.Request) (spawn.Result, error)
}

// SpawnHandler handles HTTP requests for spawn-location allocation.
type SpawnHandler struct {
	allocator Allocator
}

// NewSpawnHandler creates a new spawn handler.
func NewSpawnHandler(allocator Allocator) *SpawnHandler {
	return &SpawnHandler{allocator: allocator}
}

// spawnRequest is the request body of POST /api/v1/spawn-locations.
type spawnRequest struct {
	PlayerID         string   `json:"playerId" binding:"required,min=1,max=50"`
	PreferredRegion  string   `json:"preferredRegion" binding:"omitempty,oneof=center north south east west random"`
	GroupWithFriends *bool    `json:"groupWithFriends"`
	FriendIDs        []string `json:"friendIds" binding:"omitempty,max=20"`
}

// Allocate handles POST /api/v1/spawn-locations.
func (h *SpawnHandler) Allocate(c *gin.Context) {
	var body spawnRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	region := model.RegionName(body.PreferredRegion)
	if body.PreferredRegion == "" {
		region = model.RegionRandom
	}
	groupWithFriends := true
	if body.GroupWithFriends != nil {
		groupWithFriends = *body.GroupWithFriends
	}

	result, err := h.allocator.Allocate(c.Request.Context(), spawn.Request{
		PlayerID:         body.PlayerID,
		PreferredRegion:  region,
		GroupWithFriends: groupWithFriends,
		FriendIDs:        body.FriendIDs,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "spawn calculation failed",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
