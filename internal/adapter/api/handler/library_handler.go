package handler

import (
	"ebazaar/internal/usecase"
	"ebazaar/pkg/response"
	"ebazaar/pkg/utils"

	"github.com/labstack/echo/v4"
)

type LibraryHandler struct {
	libraryUseCase *usecase.LibraryUseCase
	defaultLimit   int
}

func NewLibraryHandler(libraryUseCase *usecase.LibraryUseCase, defaultLimit int) *LibraryHandler {
	return &LibraryHandler{
		libraryUseCase: libraryUseCase,
		defaultLimit:   defaultLimit,
	}
}

func (h *LibraryHandler) ListPurchased(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c, h.defaultLimit)

	page, err := h.libraryUseCase.GetMany(c.Request().Context(), uid, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, page)
}

func (h *LibraryHandler) GetPurchased(c echo.Context) error {
	uid := c.Get("uid").(string)

	product, err := h.libraryUseCase.GetOne(c.Request().Context(), uid, c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
