package domain

// Reference entities mirrored from the backend. Plain CRUD resources, no
// invariants beyond id uniqueness and the denormalized businessId
// back-reference.

type Business struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type Office struct {
	ID         string `json:"id"`
	BusinessID string `json:"businessId"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	Capacity   int    `json:"capacity"`
	Phone      string `json:"phone,omitempty"`
}

type Staff struct {
	ID         string `json:"id"`
	BusinessID string `json:"businessId"`
	OfficeID   string `json:"officeId"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role,omitempty"`
}
