package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/karthikbhat/invoice-hub-service/internal/model"
	"github.com/karthikbhat/invoice-hub-service/internal/service"
)

// ClientHandler handles HTTP requests for client operations.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new client handler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// RegisterRoutes registers the handler's routes on the API group.
func (h *ClientHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/clients", h.GetClients)
	api.POST("/clients", h.AddClient)
}

// GetClients handles GET /api/clients
// @Summary List clients
// @Description Returns all clients ordered by name
// @Tags clients
// @Produce json
// @Success 200 {object} model.ClientListResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/clients [get]
func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondOK(c, model.ClientListResponse{
		Success: true,
		Clients: model.ClientsFromDomain(clients),
	})
}

// AddClient handles POST /api/clients
// @Summary Add a client
// @Description Creates a new client; the name must be at least 2 characters and unique
// @Tags clients
// @Accept json
// @Produce json
// @Param client body model.CreateClientRequest true "Client to create"
// @Success 201 {object} model.ClientCreatedResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/clients [post]
func (h *ClientHandler) AddClient(c *gin.Context) {
	var req model.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, msgInvalidJSON)
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondCreated(c, model.ClientCreatedResponse{
		Success: true,
		Message: "Client added successfully",
		Client:  model.ClientFromDomain(client),
	})
}
