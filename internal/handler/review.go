package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bookhive/bookreview-service/internal/errs"
	"github.com/bookhive/bookreview-service/internal/model"
	"github.com/bookhive/bookreview-service/pkg/auth"
)

func (h *Handler) ListReviews(c echo.Context) error {
	bookID := c.Param("bookId")
	reviews, err := h.bookSvc.ListReviews(c.Request().Context(), bookID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *Handler) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookID := c.Param("bookId")

	var req model.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.bookSvc.CreateReview(ctx, bookID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateReview):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, review)
}
