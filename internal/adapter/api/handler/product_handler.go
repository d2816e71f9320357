package handler

import (
	"strings"

	"ebazaar/internal/usecase"
	"ebazaar/pkg/response"
	"ebazaar/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	defaultLimit   int
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, defaultLimit int) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		defaultLimit:   defaultLimit,
	}
}

type productRequest struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" validate:"required,gte=0"`
	CategorySlug string   `json:"category"`
	Tags         []string `json:"tags"`
	Content      string   `json:"content"`
	IsPrivate    bool     `json:"isPrivate"`
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c, h.defaultLimit)

	var tags []string
	if raw := c.QueryParam("tags"); raw != "" {
		tags = strings.Split(raw, ",")
	}

	page, err := h.productUseCase.List(c.Request().Context(), usecase.ListProductsInput{
		Cursor:     pagination.Page,
		Limit:      pagination.PageSize,
		Category:   c.QueryParam("category"),
		MinPrice:   c.QueryParam("minPrice"),
		MaxPrice:   c.QueryParam("maxPrice"),
		Tags:       tags,
		Sort:       c.QueryParam("sort"),
		TenantSlug: c.QueryParam("tenantSlug"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, page)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	var currentUserID string
	if uid, ok := c.Get("uid").(string); ok && uid != "" {
		currentUserID = uid
	}

	product, err := h.productUseCase.Get(c.Request().Context(), id, currentUserID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	product, err := h.productUseCase.Create(c.Request().Context(), uid, usecase.CreateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		CategorySlug: req.CategorySlug,
		Tags:         req.Tags,
		Content:      req.Content,
		IsPrivate:    req.IsPrivate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	product, err := h.productUseCase.Update(c.Request().Context(), uid, id, usecase.CreateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		CategorySlug: req.CategorySlug,
		Tags:         req.Tags,
		Content:      req.Content,
		IsPrivate:    req.IsPrivate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
