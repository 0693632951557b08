package main

// CreateTodoDTO for creating a new todo
type CreateTodoDTO struct {
	Title  string `json:"title"`
	IsDone bool   `json:"is_done"`
}

// UpdateTodoDTO for partially updating an existing todo. Nil fields were
// absent from the payload and keep their stored values.
type UpdateTodoDTO struct {
	Title  *string `json:"title"`
	IsDone *bool   `json:"is_done"`
}

// CreateBookDTO for creating a new book. Optional fields left nil are
// stored as NULL.
type CreateBookDTO struct {
	Title          string   `json:"title"`
	IsDiscontinued bool     `json:"is_discontinued"`
	Category       *string  `json:"category"`
	Rating         *float64 `json:"rating"`
	Quantity       *int     `json:"quantity"`
}

// UpdateBookDTO for partially updating an existing book
type UpdateBookDTO struct {
	Title          *string  `json:"title"`
	IsDiscontinued *bool    `json:"is_discontinued"`
	Category       *string  `json:"category"`
	Rating         *float64 `json:"rating"`
	Quantity       *int     `json:"quantity"`
}
