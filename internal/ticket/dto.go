package ticket

import "time"

type salePivot struct {
	TicketID uint `json:"ticket_id"`
	SaleID   uint `json:"sale_id"`
}

type saleEntry struct {
	ID          uint      `json:"id"`
	Titre       string    `json:"titre"`
	Description string    `json:"description"`
	CustomerID  uint      `json:"customer_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Pivot       salePivot `json:"pivot"`
}

type ticketResponse struct {
	ID          uint        `json:"id"`
	Titre       string      `json:"titre"`
	Description string      `json:"description"`
	Sales       []saleEntry `json:"sales"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Format builds the response payload, including one pivot object per linked
// sale.
func Format(t Ticket) ticketResponse {
	out := ticketResponse{
		ID:          t.ID,
		Titre:       t.Titre,
		Description: t.Description,
		Sales:       make([]saleEntry, 0, len(t.Sales)),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	for _, s := range t.Sales {
		out.Sales = append(out.Sales, saleEntry{
			ID:          s.ID,
			Titre:       s.Titre,
			Description: s.Description,
			CustomerID:  s.CustomerID,
			CreatedAt:   s.CreatedAt,
			UpdatedAt:   s.UpdatedAt,
			Pivot:       salePivot{TicketID: t.ID, SaleID: s.ID},
		})
	}
	return out
}

func FormatList(tickets []Ticket) []ticketResponse {
	out := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, Format(t))
	}
	return out
}
