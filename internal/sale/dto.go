package sale

import "time"

type materialPivot struct {
	SaleID     uint `json:"sale_id"`
	MaterialID uint `json:"material_id"`
}

type materialEntry struct {
	ID          uint          `json:"id"`
	Designation string        `json:"designation"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Pivot       materialPivot `json:"pivot"`
}

type customerSummary struct {
	ID     uint   `json:"id"`
	Surnom string `json:"surnom"`
}

type saleResponse struct {
	ID          uint            `json:"id"`
	Titre       string          `json:"titre"`
	Description string          `json:"description"`
	CustomerID  uint            `json:"customer_id"`
	Materials   []materialEntry `json:"materials"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Customer    customerSummary `json:"customer"`
}

// Format builds the response payload, including one pivot object per linked
// material.
func Format(s Sale) saleResponse {
	out := saleResponse{
		ID:          s.ID,
		Titre:       s.Titre,
		Description: s.Description,
		CustomerID:  s.CustomerID,
		Materials:   make([]materialEntry, 0, len(s.Materials)),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Customer: customerSummary{
			ID:     s.Customer.ID,
			Surnom: s.Customer.Surnom,
		},
	}
	for _, m := range s.Materials {
		out.Materials = append(out.Materials, materialEntry{
			ID:          m.ID,
			Designation: m.Designation,
			CreatedAt:   m.CreatedAt,
			UpdatedAt:   m.UpdatedAt,
			Pivot:       materialPivot{SaleID: s.ID, MaterialID: m.ID},
		})
	}
	return out
}

func FormatList(sales []Sale) []saleResponse {
	out := make([]saleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, Format(s))
	}
	return out
}
