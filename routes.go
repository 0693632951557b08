package main

import "github.com/labstack/echo/v4"

// Route registers all available routes
func Route(e *echo.Echo, h *Handler) {
	e.GET("/health", h.Health)

	// JSON API
	e.GET("/todos", h.GetTodos)
	e.GET("/todos/search", h.SearchTodos)
	e.GET("/todos/:id", h.GetTodoByID)
	e.POST("/todos", h.CreateTodo)
	e.PUT("/todos/:id", h.UpdateTodo)
	e.DELETE("/todos/:id", h.DeleteTodo)

	e.GET("/books", h.GetBooks)
	e.GET("/books/search", h.SearchBooks)
	e.GET("/books/:id", h.GetBookByID)
	e.POST("/books", h.CreateBook)
	e.PUT("/books/:id", h.UpdateBook)
	e.DELETE("/books/:id", h.DeleteBook)

	// HTML views
	e.GET("/view", h.ViewTodos)
	e.POST("/view", h.AddTodoForm)
	e.POST("/update/:id", h.EditTodoForm)

	e.GET("/bookview", h.ViewBooks)
	e.POST("/bookview", h.AddBookForm)
	e.POST("/bookview/update/:id", h.EditBookForm)
}
