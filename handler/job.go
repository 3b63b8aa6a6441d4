package handler

import (
	"net/http"

	"github.com/Susenthrakumar/word2pdf/service"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	store *service.JobStore
}

func NewJobHandler() *JobHandler {
	return &JobHandler{store: service.GetJobStore()}
}

// List returns recent conversion jobs, newest first
func (h *JobHandler) List(c *gin.Context) {
	jobs := h.store.List()

	result := make([]gin.H, len(jobs))
	for i, job := range jobs {
		result[i] = gin.H{
			"id":         job.ID,
			"filename":   job.Filename,
			"status":     job.Status,
			"converter":  job.Converter,
			"created_at": job.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			"updated_at": job.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	c.JSON(http.StatusOK, gin.H{"jobs": result})
}

// Get returns a single job
func (h *JobHandler) Get(c *gin.Context) {
	id := c.Param("id")

	job := h.store.Get(id)
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// GetStatus returns the outcome of a conversion job
func (h *JobHandler) GetStatus(c *gin.Context) {
	id := c.Param("id")

	job := h.store.Get(id)
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        job.ID,
		"status":    job.Status,
		"converter": job.Converter,
		"error_msg": job.ErrorMsg,
	})
}

// Delete removes a job record (the files are handled by cleanup)
func (h *JobHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	job := h.store.Get(id)
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	h.store.Delete(id)

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}
