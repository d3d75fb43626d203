package billing

// Revenue is a monthly revenue data point from the revenue service.
// Amount is integer minor units.
type Revenue struct {
	Month  string `json:"month"`
	Amount int64  `json:"amount"`
}
