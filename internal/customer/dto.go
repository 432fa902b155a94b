package customer

import "time"

type userSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type customerResponse struct {
	ID        uint        `json:"id"`
	Surnom    string      `json:"surnom"`
	UserID    uint        `json:"user_id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	User      userSummary `json:"user"`
}

// Format builds the response payload, trimming the embedded user down to
// its public fields.
func Format(c Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Surnom:    c.Surnom,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		User: userSummary{
			ID:    c.User.ID,
			Name:  c.User.Name,
			Email: c.User.Email,
		},
	}
}

func FormatList(customers []Customer) []customerResponse {
	out := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, Format(c))
	}
	return out
}
