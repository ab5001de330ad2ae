package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/stpnv0/Activities/internal/domain"
	"github.com/stpnv0/Activities/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type ActivitySvc interface {
	List(ctx context.Context) (domain.Catalog, error)
	Signup(ctx context.Context, activity, email string) (string, error)
	Unregister(ctx context.Context, activity, email string) (string, error)
}

type Handler struct {
	activityService ActivitySvc
}

func NewHandler(activityService ActivitySvc) *Handler {
	return &Handler{
		activityService: activityService,
	}
}

func (h *Handler) ListActivities(c *ginext.Context) {
	catalog, err := h.activityService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, catalog)
}

func (h *Handler) Signup(c *ginext.Context) {
	var q dto.EmailQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	message, err := h.activityService.Signup(c.Request.Context(), c.Param("name"), q.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

func (h *Handler) Unregister(c *ginext.Context) {
	var q dto.EmailQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	message, err := h.activityService.Unregister(c.Request.Context(), c.Param("name"), q.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: domain.ErrActivityNotFound.Error()})

	case errors.Is(err, domain.ErrAlreadySignedUp):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: domain.ErrAlreadySignedUp.Error()})

	case errors.Is(err, domain.ErrNotRegistered):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: domain.ErrNotRegistered.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "internal server error"})
	}
}
