package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenlight/bakeshop/internal/server/http/dto"
	"github.com/ovenlight/bakeshop/internal/usecase"
)

// AdminProductHandler manages the catalog from the back office.
type AdminProductHandler struct {
	facade AdminFacade
}

// NewAdminProductHandler creates AdminProductHandler instance.
func NewAdminProductHandler(facade AdminFacade) *AdminProductHandler {
	return &AdminProductHandler{facade: facade}
}

func productInput(req dto.ProductRequest) usecase.ProductInput {
	return usecase.ProductInput{
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		Category:         req.Category,
		ImageURL:         req.ImageURL,
		HoverImageURL:    req.HoverImageURL,
		FeaturedImageURL: req.FeaturedImageURL,
		Badge:            req.Badge,
		InStock:          req.InStock,
		Quantity:         req.Quantity,
	}
}

// List handles GET /api/admin/products. Archived products are excluded;
// out-of-stock ones are not.
func (h *AdminProductHandler) List(c *gin.Context) {
	products, err := h.facade.AdminProducts(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProductsResponse{Response: dto.OK(""), Products: dto.ProductsFromModel(products)})
}

// ListArchived handles GET /api/admin/products/archived.
func (h *AdminProductHandler) ListArchived(c *gin.Context) {
	products, err := h.facade.AdminArchivedProducts(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProductsResponse{Response: dto.OK(""), Products: dto.ProductsFromModel(products)})
}

// Get handles GET /api/admin/products/:id.
func (h *AdminProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.facade.AdminProduct(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SingleProductResponse{Response: dto.OK(""), Product: dto.ProductFromModel(product)})
}

// Create handles POST /api/admin/products.
func (h *AdminProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	id, err := h.facade.AdminCreateProduct(c.Request.Context(), productInput(req))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CreateProductResponse{Response: dto.OK("Product created"), ID: id})
}

// Update handles PUT /api/admin/products/:id.
func (h *AdminProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if err := h.facade.AdminUpdateProduct(c.Request.Context(), id, productInput(req)); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Product updated"))
}

// Archive handles DELETE /api/admin/products/:id. Products are never hard
// deleted: order history keeps pointing at them.
func (h *AdminProductHandler) Archive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.AdminArchiveProduct(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Product archived"))
}

// Restore handles POST /api/admin/products/:id/restore.
func (h *AdminProductHandler) Restore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.AdminRestoreProduct(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Product restored"))
}
