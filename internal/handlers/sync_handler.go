package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fingraph/internal/services"
)

// SyncHandler exposes the full ledger-to-graph rebuild.
type SyncHandler struct {
	syncService services.SyncServicer
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(syncService services.SyncServicer) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// FullResync rebuilds the graph projection from the ledger.
// @Summary     Full resync
// @Description Delete all Transaction nodes and re-derive them from the ledger
// @Tags        sync
// @Produce     json
// @Success     200 {object} services.SyncReport "Resync report, possibly partial"
// @Failure     502 {object} ErrorResponse "Graph store unreachable"
// @Router      /sync [post]
func (h *SyncHandler) FullResync(c *gin.Context) {
	report, err := h.syncService.FullResync(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
