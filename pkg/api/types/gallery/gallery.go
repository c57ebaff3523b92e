package gallery

// Spec is the request body to create or update a reference entry.
type Spec struct {
	Property   string `json:"property"`
	ValueLabel string `json:"valueLabel"`
	ImageURL   string `json:"imageUrl"`
	Caption    string `json:"caption,omitempty"`
	Position   int    `json:"position,omitempty"`
}

// Detail is one reference entry as served to the dashboard.
type Detail struct {
	Id         int    `json:"id"`
	Property   string `json:"property"`
	ValueLabel string `json:"valueLabel"`
	ImageURL   string `json:"imageUrl"`
	Caption    string `json:"caption,omitempty"`
	Position   int    `json:"position"`
}

type Created struct {
	Id int `json:"id"`
}
