package handler

import (
	"net/http"
	"strings"

	"github.com/Susenthrakumar/word2pdf/service"
	"github.com/gin-gonic/gin"
)

type DownloadHandler struct {
	storage *service.LocalStorage
}

func NewDownloadHandler(storage *service.LocalStorage) *DownloadHandler {
	return &DownloadHandler{storage: storage}
}

// Download serves a converted PDF as an attachment. The client sees the
// original filename, not the timestamped one on disk.
func (h *DownloadHandler) Download(c *gin.Context) {
	storedName := c.Param("filename")

	if storedName == "" || strings.ContainsAny(storedName, "/\\") || strings.Contains(storedName, "..") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
		return
	}

	downloadName, err := service.DownloadName(storedName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
		return
	}

	if !h.storage.OutputExists(storedName) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.FileAttachment(h.storage.OutputPath(storedName), downloadName)
}
