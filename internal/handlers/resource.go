package handlers

import (
	"net/http"
	"strconv"

	"github.com/eventdesk/server/internal/helpers"
	"github.com/eventdesk/server/internal/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource binds the five CRUD handlers for one entity. The same handler set
// serves all four entities; only the collection and the schema differ.
type Resource[T any] struct {
	// Name appears in messages ("Event created", "Event not found").
	Name  string
	Store models.EntityStore[T]
}

// setID is implemented by every entity struct so the generic handlers can
// stamp or clear the document id without reflection.
type setID interface {
	SetID(id primitive.ObjectID)
}

func (r *Resource[T]) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc T
		if err := c.ShouldBindJSON(&doc); err != nil {
			c.JSON(http.StatusUnprocessableEntity, helpers.ErrorResponse("invalid request body"))
			return
		}

		if fieldErrors := models.ValidateStruct(&doc); fieldErrors != nil {
			c.JSON(http.StatusUnprocessableEntity, helpers.ValidationErrorResponse(fieldErrors))
			return
		}

		// Never trust a client-supplied id; the store assigns one.
		if d, ok := any(&doc).(setID); ok {
			d.SetID(primitive.NilObjectID)
		}

		id, err := r.Store.InsertOne(c.Request.Context(), &doc)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("internal server error"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{"id": helpers.RenderID(id)}, r.Name+" created"))
	}
}

func (r *Resource[T]) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid limit parameter"))
			return
		}

		docs, err := r.Store.FindMany(c.Request.Context(), limit)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("internal server error"))
			return
		}
		if docs == nil {
			docs = []T{}
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(docs, ""))
	}
}

func (r *Resource[T]) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		doc, err := r.Store.FindByID(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("internal server error"))
			return
		}
		if doc == nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse(r.Name+" not found"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(doc, ""))
	}
}

func (r *Resource[T]) Replace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		var doc T
		if err := c.ShouldBindJSON(&doc); err != nil {
			c.JSON(http.StatusUnprocessableEntity, helpers.ErrorResponse("invalid request body"))
			return
		}

		if fieldErrors := models.ValidateStruct(&doc); fieldErrors != nil {
			c.JSON(http.StatusUnprocessableEntity, helpers.ValidationErrorResponse(fieldErrors))
			return
		}

		// The replacement carries a zero id so _id is preserved.
		if d, ok := any(&doc).(setID); ok {
			d.SetID(primitive.NilObjectID)
		}

		matched, err := r.Store.ReplaceByID(c.Request.Context(), id, &doc)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("internal server error"))
			return
		}
		if !matched {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse(r.Name+" not found"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, r.Name+" updated"))
	}
}

func (r *Resource[T]) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		deleted, err := r.Store.DeleteByID(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("internal server error"))
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse(r.Name+" not found"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, r.Name+" deleted"))
	}
}

// Register wires the five CRUD routes for one entity.
func Register[T any](rg *gin.RouterGroup, path string, r *Resource[T]) {
	rg.POST("/"+path, r.Create())
	rg.GET("/"+path, r.List())
	rg.GET("/"+path+"/:id", r.Get())
	rg.PUT("/"+path+"/:id", r.Replace())
	rg.DELETE("/"+path+"/:id", r.Delete())
}
