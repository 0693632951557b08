package main

import "time"

// timeLayout is the wire format for timestamps, shared by the JSON API and
// the HTML views. Second precision, no timezone suffix.
const timeLayout = "2006-01-02 15:04:05"

// Todo represents one row of the todo table
type Todo struct {
	ID        int
	Title     string
	IsDone    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Book represents one row of the book table. Category, rating and quantity
// are optional and map to NULL columns when unset.
type Book struct {
	ID             int
	Title          string
	IsDiscontinued bool
	Category       *string
	Rating         *float64
	Quantity       *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TodoResponse is the serialized form of a Todo
type TodoResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	IsDone    bool   `json:"is_done"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// BookResponse is the serialized form of a Book. Optional fields stay in the
// payload as null when unset rather than being omitted.
type BookResponse struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	IsDiscontinued bool     `json:"is_discontinued"`
	Category       *string  `json:"category"`
	Rating         *float64 `json:"rating"`
	Quantity       *int     `json:"quantity"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// Response serializes the todo for output
func (t *Todo) Response() TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		IsDone:    t.IsDone,
		CreatedAt: t.CreatedAt.Format(timeLayout),
		UpdatedAt: t.UpdatedAt.Format(timeLayout),
	}
}

// Response serializes the book for output
func (b *Book) Response() BookResponse {
	return BookResponse{
		ID:             b.ID,
		Title:          b.Title,
		IsDiscontinued: b.IsDiscontinued,
		Category:       b.Category,
		Rating:         b.Rating,
		Quantity:       b.Quantity,
		CreatedAt:      b.CreatedAt.Format(timeLayout),
		UpdatedAt:      b.UpdatedAt.Format(timeLayout),
	}
}

func todoResponses(todos []Todo) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		out = append(out, todos[i].Response())
	}
	return out
}

func bookResponses(books []Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, books[i].Response())
	}
	return out
}
