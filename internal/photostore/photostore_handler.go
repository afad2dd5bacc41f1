package photostore

import (
	"io"
	"net/http"

	photostoreerrors "github.com/Urbancode-IT/INOUT-sub000/internal/photostore/errors"
	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/apperror"
	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Uploads above this size are rejected before touching disk.
const maxPhotoBytes = 5 << 20

type Handler struct {
	store  Store
	logger *zap.Logger
}

func NewHandler(store Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("photostore.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("photostore.handler")
	}
	return &Handler{store: store, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("photo request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Upload accepts a multipart "photo" field and returns the ref the
// client submits with its attendance check-in.
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing photo file", err.Error())
		return
	}
	if file.Size > maxPhotoBytes {
		h.writeServiceError(c, photostoreerrors.ErrPhotoTooLarge)
		return
	}

	f, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unreadable photo file", err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes+1))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unreadable photo file", err.Error())
		return
	}
	if int64(len(data)) > maxPhotoBytes {
		h.writeServiceError(c, photostoreerrors.ErrPhotoTooLarge)
		return
	}

	ref, err := h.store.Save(data, file.Filename)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.logger.Info("photo stored", zap.String("photo_ref", ref), zap.Int("bytes", len(data)))
	response.Success(c, http.StatusCreated, gin.H{"photo_ref": ref}, nil)
}

// Get streams a stored photo back. Admin-only route surface.
func (h *Handler) Get(c *gin.Context) {
	data, err := h.store.Read(c.Query("ref"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
