package categories

// Spec is the request body to create a category.
type Spec struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentId    *int   `json:"parentId,omitempty"`
	Position    int    `json:"position,omitempty"`
}

// Rename is the request body to rename a category.
type Rename struct {
	Name string `json:"name"`
}

// Move is the request body to reparent a category. Null parentId moves
// it to the root.
type Move struct {
	ParentId *int `json:"parentId"`
}

// Node is one category with its subtree.
type Node struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentId    *int   `json:"parentId,omitempty"`
	Position    int    `json:"position"`
	Children    []Node `json:"children"`
}

// Created is the response body of a successful create.
type Created struct {
	Id int `json:"id"`
}
