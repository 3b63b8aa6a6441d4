package handler

import (
	"net/http"
	"time"

	"github.com/Susenthrakumar/word2pdf/pkg/logger"
	"github.com/Susenthrakumar/word2pdf/service"
	"github.com/gin-gonic/gin"
)

type CleanupHandler struct {
	storage *service.LocalStorage
	maxAge  time.Duration
}

func NewCleanupHandler(storage *service.LocalStorage, maxAge time.Duration) *CleanupHandler {
	return &CleanupHandler{
		storage: storage,
		maxAge:  maxAge,
	}
}

// Cleanup deletes uploads and outputs older than the configured age
func (h *CleanupHandler) Cleanup(c *gin.Context) {
	deleted := h.storage.Sweep(h.maxAge)

	logger.Info(c.Request.Context(), "cleanup completed", "deleted_count", deleted)

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"deleted_count": deleted,
	})
}
