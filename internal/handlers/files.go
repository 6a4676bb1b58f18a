package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eventdesk/server/internal/helpers"
	"github.com/eventdesk/server/internal/models"
	"github.com/gin-gonic/gin"
)

// FileResource binds the upload/retrieve pair for one media collection.
// The parent id path parameter is taken verbatim; it is a loose reference,
// never parsed as an ObjectId.
type FileResource struct {
	// Label appears in messages ("Event poster uploaded", "Poster not found").
	Label string
	// NotFoundLabel overrides Label in the not-found message when the two
	// differ ("Poster not found" vs "Event poster uploaded").
	NotFoundLabel string
	Store         models.FileStore
}

func (f *FileResource) notFound() string {
	if f.NotFoundLabel != "" {
		return f.NotFoundLabel + " not found"
	}
	return f.Label + " not found"
}

// Upload reads the whole multipart payload into memory and stores it with
// its declared content type, original filename and the current UTC time.
// There is no size limit or content-type whitelist.
func (f *FileResource) Upload(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		parentID := c.Param(param)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, helpers.ErrorResponse("file is required"))
			return
		}

		src, err := fileHeader.Open()
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("internal server error"))
			return
		}
		defer src.Close()

		content, err := io.ReadAll(src)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("internal server error"))
			return
		}

		rec := &models.FileRecord{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Content:     content,
			UploadedAt:  time.Now().UTC(),
		}

		id, err := f.Store.Insert(c.Request.Context(), parentID, rec)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("internal server error"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{"id": helpers.RenderID(id)}, f.Label+" uploaded"))
	}
}

// Retrieve streams back the most recent upload for the parent id with the
// stored content type, and the original filename as a download hint.
func (f *FileResource) Retrieve(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		parentID := c.Param(param)

		rec, err := f.Store.FindLatestByParent(c.Request.Context(), parentID)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("internal server error"))
			return
		}
		if rec == nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse(f.notFound()))
			return
		}

		if rec.Filename != "" {
			c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", rec.Filename))
		}
		c.Data(http.StatusOK, rec.ContentType, rec.Content)
	}
}

// RegisterFiles wires the upload/retrieve pair for one media collection.
func RegisterFiles(rg *gin.RouterGroup, uploadPath, retrievePath, param string, f *FileResource) {
	rg.POST("/"+uploadPath+"/:"+param, f.Upload(param))
	rg.GET("/"+retrievePath+"/:"+param, f.Retrieve(param))
}
