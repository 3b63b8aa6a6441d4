package handler

import (
	"net/http"
	"time"

	"github.com/Susenthrakumar/word2pdf/middleware"
	"github.com/Susenthrakumar/word2pdf/model"
	"github.com/Susenthrakumar/word2pdf/pkg/logger"
	"github.com/Susenthrakumar/word2pdf/service"
	"github.com/gin-gonic/gin"
)

type ConvertHandler struct {
	storage *service.LocalStorage
	chain   *service.Chain
	archive *service.ArchiveService // nil when archiving is disabled
	store   *service.JobStore
}

func NewConvertHandler(storage *service.LocalStorage, chain *service.Chain, archive *service.ArchiveService) *ConvertHandler {
	return &ConvertHandler{
		storage: storage,
		chain:   chain,
		archive: archive,
		store:   service.GetJobStore(),
	}
}

// Convert handles a Word document upload and converts it synchronously
func (h *ConvertHandler) Convert(c *gin.Context) {
	ctx := c.Request.Context()

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
		return
	}

	if !service.HasWordExtension(header.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file format. Please upload a Word document (.doc or .docx)"})
		return
	}

	// Unique prefix ties the upload, the output and the job record together
	fileID := service.NewFileID()
	storedName := service.StoredName(fileID, header.Filename)
	outputName := service.OutputName(fileID, header.Filename)

	if _, err := h.storage.SaveUpload(storedName, file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save upload: " + err.Error()})
		return
	}

	job := &model.Job{
		ID:          fileID,
		Filename:    service.SanitizeFilename(header.Filename),
		StoredName:  storedName,
		Status:      model.StatusProcessing,
		RequestedBy: middleware.GetUsername(c),
		CreatedAt:   time.Now(),
	}
	h.store.Save(job)

	logger.Info(ctx, "conversion started",
		"job_id", fileID,
		"filename", job.Filename,
		"size", header.Size,
	)

	winner, convErr := h.chain.Convert(ctx, h.storage.UploadPath(storedName), h.storage.OutputPath(outputName))

	// The input is gone either way; only the PDF survives
	h.storage.RemoveUpload(storedName)

	if convErr != nil {
		h.store.UpdateStatus(fileID, model.StatusFailed, convErr.Error())
		logger.Error(ctx, "conversion failed", "job_id", fileID, "error", convErr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": convErr.Error()})
		return
	}

	h.store.MarkCompleted(fileID, winner, outputName)

	downloadName, err := service.DownloadName(outputName)
	if err != nil {
		// Cannot happen for names we just built, but keep the response sane
		downloadName = outputName
	}

	resp := gin.H{
		"success":      true,
		"job_id":       fileID,
		"filename":     downloadName,
		"converter":    winner,
		"download_url": "/api/download/" + outputName,
	}

	if h.archive != nil {
		archiveURL, err := h.archive.StorePDF(ctx, h.storage.OutputPath(outputName))
		if err != nil {
			logger.Warn(ctx, "failed to archive PDF", "job_id", fileID, "error", err)
		} else {
			job.ArchiveURL = archiveURL
			h.store.Save(job)
			resp["archive_url"] = archiveURL
		}
	}

	c.JSON(http.StatusOK, resp)
}
