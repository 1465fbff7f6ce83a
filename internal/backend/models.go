package backend

// Order statuses as the backend knows them. The admin dashboard offers
// every target status for every order; the backend decides what is legal.
const (
	StatusPending   = "pending"
	StatusVerified  = "verified"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

var Statuses = []string{StatusPending, StatusVerified, StatusDelivered, StatusCancelled}

type Game struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Platform    string   `json:"platform"` // "PC" or "Mobile"
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Image returns the first catalog image, or a placeholder when none exist.
func (g Game) Image() string {
	if len(g.Images) > 0 {
		return g.Images[0]
	}
	return "https://via.placeholder.com/400x240?text=Game"
}

type Order struct {
	ID            string `json:"_id"`
	GameID        string `json:"game_id"`
	TransactionID string `json:"transaction_id"`
	DeliveryEmail string `json:"delivery_email"`
	Status        string `json:"status"`
}

type OrderRequest struct {
	GameID        string `json:"game_id"`
	TransactionID string `json:"transaction_id"`
	DeliveryEmail string `json:"delivery_email"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResult struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type GameInput struct {
	Title       string   `json:"title"`
	Platform    string   `json:"platform"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}
