package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/karthikbhat/invoice-hub-service/internal/model"
	"github.com/karthikbhat/invoice-hub-service/internal/service"
)

// ItemHandler handles HTTP requests for catalog item operations.
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// RegisterRoutes registers the handler's routes on the API group.
func (h *ItemHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/items", h.GetItems)
	api.POST("/items", h.AddItem)
}

// GetItems handles GET /api/items
// @Summary List catalog items
// @Description Returns all catalog items ordered by name
// @Tags items
// @Produce json
// @Success 200 {object} model.ItemListResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/items [get]
func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondOK(c, model.ItemListResponse{
		Success: true,
		Items:   model.ItemsFromDomain(items),
	})
}

// AddItem handles POST /api/items
// @Summary Add a catalog item
// @Description Creates a new billable item with a unit price and GST rate
// @Tags items
// @Accept json
// @Produce json
// @Param item body model.CreateItemRequest true "Item to create"
// @Success 201 {object} model.ItemCreatedResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/items [post]
func (h *ItemHandler) AddItem(c *gin.Context) {
	var req model.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, msgInvalidJSON)
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondCreated(c, model.ItemCreatedResponse{
		Success: true,
		Message: "Item added successfully",
		Item:    model.ItemFromDomain(item),
	})
}
