package domain

// Client represents a customer that invoices can be billed to.
// Clients are created once and never updated through this service.
type Client struct {
	ID      int64
	Name    string
	Email   *string
	Address *string
}
