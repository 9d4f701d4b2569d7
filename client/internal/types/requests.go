package types

// ------------------------------
// Request Types
// ------------------------------

// SearchQuery holds the optional placename search criteria. Nil fields are
// left out of the request body entirely.
type SearchQuery struct {
	Limit *uint32 `json:"limit,omitempty"`
	Name  *string `json:"name,omitempty"`
	Page  *uint32 `json:"page,omitempty"`
	Kind  *string `json:"type,omitempty"`
	Year  *uint32 `json:"year,omitempty"`
}

// Uint32 returns a pointer to v, for filling SearchQuery fields.
func Uint32(v uint32) *uint32 { return &v }

// String returns a pointer to v, for filling SearchQuery fields.
func String(v string) *string { return &v }
