package docstore

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda/pkg/crud"
)

// Handler mirrors the relational generic handler for document entities. It
// performs no schema-derived validation and exposes no pagination or
// field-scoped operations.
type Handler struct {
	entity string
	repo   Repository
}

func NewHandler(entity string, repo Repository) *Handler {
	return &Handler{entity: entity, repo: repo}
}

func (h *Handler) Register(g gin.IRoutes) {
	base := "/" + h.entity
	g.GET(base, h.FindAll)
	g.POST(base, h.Create)
	g.GET(base+"/:id", h.FindByID)
	g.PUT(base+"/:id", h.Update)
	g.DELETE(base+"/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	data := map[string]any{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.repo.Create(c.Request.Context(), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *Handler) FindAll(c *gin.Context) {
	docs, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *Handler) FindByID(c *gin.Context) {
	doc, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": h.entity + " not found", "msg": "NotFoundError"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *Handler) Update(c *gin.Context) {
	data := map[string]any{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.repo.Update(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *Handler) Delete(c *gin.Context) {
	if _, err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var nf *crud.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error(), "msg": "NotFoundError"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
