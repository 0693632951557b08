package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Handler bundles the record stores behind the HTTP handlers
type Handler struct {
	todos *TodoStore
	books *BookStore
}

func NewHandler(todos *TodoStore, books *BookStore) *Handler {
	return &Handler{todos: todos, books: books}
}

// Health reports service liveness
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// GetTodos returns every todo
func (h *Handler) GetTodos(c echo.Context) error {
	todos, err := h.todos.All()
	if err != nil {
		fmt.Println("Error listing todos:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, todoResponses(todos))
}

// GetTodoByID returns a single todo
func (h *Handler) GetTodoByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid ID"})
	}

	todo, err := h.todos.Get(id)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Todo not found"})
	}
	if err != nil {
		fmt.Println("Error fetching todo:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, todo.Response())
}

// SearchTodos returns todos whose title contains the title query parameter
func (h *Handler) SearchTodos(c echo.Context) error {
	keyword := c.QueryParam("title")
	if keyword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title query parameter is required"})
	}

	todos, err := h.todos.Search(keyword)
	if err != nil {
		fmt.Println("Error searching todos:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, todoResponses(todos))
}

// CreateTodo creates a new todo
func (h *Handler) CreateTodo(c echo.Context) error {
	var dto CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	todo, err := h.todos.Create(dto)
	if errors.Is(err, ErrTitleRequired) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err != nil {
		fmt.Println("Error inserting todo:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, todo.Response())
}

// UpdateTodo partially updates an existing todo; fields absent from the
// body keep their stored values.
func (h *Handler) UpdateTodo(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid ID"})
	}

	var dto UpdateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	todo, err := h.todos.Update(id, dto)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Todo not found"})
	}
	if errors.Is(err, ErrTitleRequired) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err != nil {
		fmt.Println("Error updating todo:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, todo.Response())
}

// DeleteTodo deletes a todo
func (h *Handler) DeleteTodo(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid ID"})
	}

	err = h.todos.Delete(id)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Todo not found"})
	}
	if err != nil {
		fmt.Println("Error deleting todo:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// GetBooks returns every book
func (h *Handler) GetBooks(c echo.Context) error {
	books, err := h.books.All()
	if err != nil {
		fmt.Println("Error listing books:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, bookResponses(books))
}

// GetBookByID returns a single book
func (h *Handler) GetBookByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid ID"})
	}

	book, err := h.books.Get(id)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Book not found"})
	}
	if err != nil {
		fmt.Println("Error fetching book:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, book.Response())
}

// SearchBooks returns books whose title contains the title query parameter
func (h *Handler) SearchBooks(c echo.Context) error {
	keyword := c.QueryParam("title")
	if keyword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title query parameter is required"})
	}

	books, err := h.books.Search(keyword)
	if err != nil {
		fmt.Println("Error searching books:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, bookResponses(books))
}

// CreateBook creates a new book
func (h *Handler) CreateBook(c echo.Context) error {
	var dto CreateBookDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	book, err := h.books.Create(dto)
	if errors.Is(err, ErrTitleRequired) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err != nil {
		fmt.Println("Error inserting book:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, book.Response())
}

// UpdateBook partially updates an existing book
func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid ID"})
	}

	var dto UpdateBookDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	book, err := h.books.Update(id, dto)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Book not found"})
	}
	if errors.Is(err, ErrTitleRequired) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err != nil {
		fmt.Println("Error updating book:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, book.Response())
}

// DeleteBook deletes a book
func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid ID"})
	}

	err = h.books.Delete(id)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Book not found"})
	}
	if err != nil {
		fmt.Println("Error deleting book:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
