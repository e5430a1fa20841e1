package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Srinandan2003/CollabSphere/store"

	"github.com/gin-gonic/gin"
)

type MediaController struct {
	media store.MediaStore
	log   *slog.Logger
}

func NewMediaController(media store.MediaStore, log *slog.Logger) *MediaController {
	return &MediaController{media: media, log: log}
}

// Get streams a media blob from GridFS to the response. The stream is
// opened before any header is written so a missing blob gets a clean
// JSON 404.
func (ctl *MediaController) Get(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	src, err := ctl.media.Open(id)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			c.JSON(http.StatusNotFound, gin.H{"message": "media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to open media"})
		return
	}
	defer src.Close()

	c.Header("Content-Type", "application/octet-stream")
	if _, err := io.Copy(c.Writer, src); err != nil {
		// the response is already partially written; a JSON body here
		// would corrupt the binary output
		ctl.log.Warn("media stream interrupted", "media", id.Hex(), "error", err)
	}
}
