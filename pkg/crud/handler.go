package crud

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPageLimit = 10

// Mutator runs on the parsed request body before create and update, after the
// required-field check. Entity wiring uses it for server-side rewrites such as
// password hashing.
type Mutator func(data map[string]any) error

// Handler exposes one entity's Store over HTTP. It owns body parsing, the
// required-field validation against the descriptor, and status-code mapping.
type Handler[T any] struct {
	store   Store[T]
	desc    Descriptor
	Mutator Mutator
}

func NewHandler[T any](store Store[T], desc Descriptor) *Handler[T] {
	return &Handler[T]{store: store, desc: desc}
}

// Register mounts the full route set for the entity under g.
func (h *Handler[T]) Register(g gin.IRoutes) {
	base := "/" + h.desc.Entity
	g.GET(base, h.FindAll)
	g.POST(base, h.Create)
	g.GET(base+"/:id", h.FindByID)
	g.PUT(base+"/:id", h.Update)
	g.PATCH(base+"/:id", h.UpdateField)
	g.DELETE(base+"/:id", h.Delete)
	g.POST(base+"/buscar", h.FindByField)
}

func (h *Handler[T]) Create(c *gin.Context) {
	data, ok := h.bindBody(c)
	if !ok {
		return
	}
	if missing := h.desc.MissingRequired(data); len(missing) > 0 {
		respondError(c, newMissingFields(missing))
		return
	}
	if !h.applyMutator(c, data) {
		return
	}
	rec, err := h.store.Create(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *Handler[T]) FindAll(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	ctx := c.Request.Context()

	if pageStr == "" && limitStr == "" {
		recs, err := h.store.FindAll(ctx, 0, 0)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, recs)
		return
	}

	page := parsePositive(pageStr, 1)
	limit := parsePositive(limitStr, defaultPageLimit)
	offset := (page - 1) * limit

	recs, err := h.store.FindAll(ctx, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	total, err := h.store.CountAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	totalPages := (total + int64(limit) - 1) / int64(limit)
	c.JSON(http.StatusOK, gin.H{
		"data": recs,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

func (h *Handler[T]) FindByID(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	rec, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if rec == nil {
		respondError(c, &NotFoundError{Entity: h.desc.Entity, ID: id})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler[T]) Update(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	data, ok := h.bindBody(c)
	if !ok {
		return
	}
	if missing := h.desc.MissingRequired(data); len(missing) > 0 {
		respondError(c, newMissingFields(missing))
		return
	}
	if !h.applyMutator(c, data) {
		return
	}
	rec, err := h.store.Update(c.Request.Context(), id, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler[T]) Delete(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	if _, err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler[T]) UpdateField(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	campo, valor, ok := h.bindFieldBody(c)
	if !ok {
		return
	}
	rec, err := h.store.UpdateField(c.Request.Context(), id, campo, valor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler[T]) FindByField(c *gin.Context) {
	campo, valor, ok := h.bindFieldBody(c)
	if !ok {
		return
	}
	recs, err := h.store.FindByField(c.Request.Context(), campo, valor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handler[T]) bindBody(c *gin.Context) (map[string]any, bool) {
	data := map[string]any{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return data, true
}

func (h *Handler[T]) bindFieldBody(c *gin.Context) (string, any, bool) {
	var req struct {
		Campo string `json:"campo"`
		Valor any    `json:"valor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", nil, false
	}
	if req.Campo == "" || req.Valor == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "campo and valor are required"})
		return "", nil, false
	}
	return req.Campo, req.Valor, true
}

func (h *Handler[T]) applyMutator(c *gin.Context, data map[string]any) bool {
	if h.Mutator == nil {
		return true
	}
	if err := h.Mutator(data); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

func (h *Handler[T]) paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func parsePositive(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// respondError translates the error taxonomy to HTTP statuses: 400 for
// validation/constraint/invalid-field, 404 for not-found, 500 otherwise.
func respondError(c *gin.Context, err error) {
	var (
		ve *ValidationError
		ce *ConstraintError
		nf *NotFoundError
		fe *InvalidFieldError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "msg": "ValidationError"})
	case errors.As(err, &ce):
		c.JSON(http.StatusBadRequest, gin.H{"error": ce.Error(), "msg": "ConstraintError", "original": ce.Original})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error(), "msg": "NotFoundError"})
	case errors.As(err, &fe):
		c.JSON(http.StatusBadRequest, gin.H{"error": fe.Error(), "msg": "InvalidFieldError"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
