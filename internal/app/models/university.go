package models

// University represents a registered university. Universities are immutable
// once created; there are no update or delete operations.
type University struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
