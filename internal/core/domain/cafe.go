package domain

// Cafe is a place that serves coffees.
type Cafe struct {
	CafeID   string `json:"cafeID"`
	Name     string `json:"name"`
	Location string `json:"location"`
	AuditFields
}
