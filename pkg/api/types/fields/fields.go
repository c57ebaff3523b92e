package fields

// Spec is the request body to create or update a field definition.
type Spec struct {
	Key      string   `json:"key"`
	Label    string   `json:"label,omitempty"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required,omitempty"`
	Options  []string `json:"options,omitempty"`
	Position int      `json:"position,omitempty"`
}

// Detail is one field definition as served to the dashboard.
type Detail struct {
	Id       int      `json:"id"`
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Position int      `json:"position"`
}

type Created struct {
	Id int `json:"id"`
}

// Order is the request body to rewrite field positions.
//
// Ids lists every field id in the desired display order.
type Order struct {
	Ids []int `json:"ids"`
}
