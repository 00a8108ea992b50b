package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pkrms_db/internal/ingest"
	"pkrms_db/internal/middleware"
	"pkrms_db/internal/record"
)

// UploadController accepts bulk uploads.
type UploadController struct {
	service *ingest.Service
	maxBody int64
}

func NewUploadController(svc *ingest.Service, maxBody int64) *UploadController {
	return &UploadController{service: svc, maxBody: maxBody}
}

// Upload validates and stores a batch of records keyed by entity name.
// @Summary Bulk upload of road asset data
// @Accept json
// @Produce json
// @Router /api/upload-data/ [post]
func (uc *UploadController) Upload(c *gin.Context) {
	log := logrus.WithField("request_id", c.GetString(middleware.RequestIDKey))

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, uc.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}
		log.WithError(err).Warn("Failed to read upload body.")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read request body"})
		return
	}

	batch, err := record.DecodeBatch(body)
	if err != nil {
		log.WithError(err).Warn("Rejected upload body.")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := uc.service.Upload(c.Request.Context(), batch)
	log.WithFields(logrus.Fields{
		"batch_id": res.BatchID,
		"status":   res.Status,
	}).Info("Upload processed.")

	switch res.Status {
	case ingest.StatusValidationError:
		c.JSON(http.StatusBadRequest, gin.H{
			"status":   res.Status,
			"message":  res.Message,
			"batch_id": res.BatchID,
			"errors":   res.Errors,
		})
	case ingest.StatusSuccess:
		c.JSON(http.StatusCreated, gin.H{
			"status":   res.Status,
			"message":  res.Message,
			"batch_id": res.BatchID,
			"results":  res.Entities,
		})
	default:
		c.JSON(http.StatusMultiStatus, res)
	}
}
