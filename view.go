package main

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const todoViewHTML = `<!doctype html>
<html>
<head>
    <title>Todo List</title>
    <style>
        body { font-family: Arial; padding: 2em; }
        table { border-collapse: collapse; width: 100%; margin-bottom: 2em; }
        th, td { border: 1px solid #ccc; padding: 8px; text-align: left; }
        th { background-color: #f5f5f5; }
    </style>
</head>
<body>
    <h2>Todo List</h2>

    <form method="get" style="margin-bottom: 1.5em;">
        <input type="text" name="query" placeholder="Search title" value="{{.Query}}">
        <button type="submit">Search</button>
        <a href="/view"><button type="button">Reset</button></a>
    </form>

    <form method="post" style="margin-bottom: 2em;">
        <input type="text" name="title" placeholder="New todo title" required>
        <label><input type="checkbox" name="is_done"> Done</label>
        <button type="submit">Add</button>
    </form>

    <table>
        <thead>
            <tr>
                <th>ID</th>
                <th>Title</th>
                <th>Done</th>
                <th>Created</th>
                <th>Updated</th>
                <th>Update</th>
                <th>Delete</th>
            </tr>
        </thead>
        <tbody>
            {{range .Todos}}
            <tr>
                <form method="post" action="/update/{{.ID}}">
                    <td>{{.ID}}</td>
                    <td><input type="text" name="title" value="{{.Title}}"></td>
                    <td><input type="checkbox" name="is_done"{{if .IsDone}} checked{{end}}></td>
                    <td>{{.CreatedAt}}</td>
                    <td>{{.UpdatedAt}}</td>
                    <td><button type="submit" name="action" value="update">Update</button></td>
                    <td><button type="submit" name="action" value="delete">Delete</button></td>
                </form>
            </tr>
            {{end}}
        </tbody>
    </table>
</body>
</html>
`

const bookViewHTML = `<!doctype html>
<html>
<head>
    <title>Book List</title>
    <style>
        body { font-family: Arial; padding: 2em; }
        table { border-collapse: collapse; width: 100%; margin-bottom: 2em; }
        th, td { border: 1px solid #ccc; padding: 8px; text-align: left; }
        th { background-color: #f5f5f5; }
    </style>
</head>
<body>
    <h2>Book List</h2>

    <form method="get" style="margin-bottom: 1em;">
        <input type="text" name="query" placeholder="Search title" value="{{.Query}}">
        <button type="submit">Search</button>
        <a href="/bookview"><button type="button">Reset</button></a>
    </form>

    <form method="post" style="margin-bottom: 2em;">
        <input type="text" name="title" placeholder="Title" required>
        <input type="text" name="category" placeholder="Category">
        <input type="number" step="0.1" name="rating" placeholder="Rating">
        <input type="number" name="quantity" placeholder="Quantity">
        <label><input type="checkbox" name="is_discontinued"> Discontinued</label>
        <button type="submit">Add</button>
    </form>

    <table>
        <thead>
            <tr>
                <th>ID</th>
                <th>Title</th>
                <th>Discontinued</th>
                <th>Category</th>
                <th>Rating</th>
                <th>Quantity</th>
                <th>Created</th>
                <th>Updated</th>
                <th>Update</th>
                <th>Delete</th>
            </tr>
        </thead>
        <tbody>
            {{range .Books}}
            <tr>
                <form method="post" action="/bookview/update/{{.ID}}">
                    <td>{{.ID}}</td>
                    <td><input type="text" name="title" value="{{.Title}}"></td>
                    <td><input type="checkbox" name="is_discontinued"{{if .IsDiscontinued}} checked{{end}}></td>
                    <td><input type="text" name="category" value="{{if .Category}}{{.Category}}{{end}}"></td>
                    <td><input type="number" step="0.1" name="rating" value="{{if .Rating}}{{.Rating}}{{end}}"></td>
                    <td><input type="number" name="quantity" value="{{if .Quantity}}{{.Quantity}}{{end}}"></td>
                    <td>{{.CreatedAt}}</td>
                    <td>{{.UpdatedAt}}</td>
                    <td><button type="submit" name="action" value="update">Update</button></td>
                    <td><button type="submit" name="action" value="delete">Delete</button></td>
                </form>
            </tr>
            {{end}}
        </tbody>
    </table>
</body>
</html>
`

var (
	todoViewTmpl = template.Must(template.New("todoview").Parse(todoViewHTML))
	bookViewTmpl = template.Must(template.New("bookview").Parse(bookViewHTML))
)

func renderView(c echo.Context, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}
	return c.HTML(http.StatusOK, buf.String())
}

// ViewTodos renders the todo table, filtered by the optional query param
func (h *Handler) ViewTodos(c echo.Context) error {
	query := c.QueryParam("query")

	var (
		todos []Todo
		err   error
	)
	if query != "" {
		todos, err = h.todos.Search(query)
	} else {
		todos, err = h.todos.All()
	}
	if err != nil {
		fmt.Println("Error listing todos:", err)
		return err
	}

	data := struct {
		Query string
		Todos []TodoResponse
	}{Query: query, Todos: todoResponses(todos)}
	return renderView(c, todoViewTmpl, data)
}

// AddTodoForm creates a todo from the add form and redirects back to the
// list. A submission without a title creates nothing. The redirect target
// is the bare list path, so an active search filter is not preserved.
func (h *Handler) AddTodoForm(c echo.Context) error {
	title := c.FormValue("title")
	if title != "" {
		dto := CreateTodoDTO{Title: title, IsDone: c.FormValue("is_done") == "on"}
		if _, err := h.todos.Create(dto); err != nil {
			fmt.Println("Error inserting todo:", err)
		}
	}
	return c.Redirect(http.StatusSeeOther, "/view")
}

// EditTodoForm dispatches a row form submission to update or delete, then
// redirects back to the list. Unknown ids and actions just redirect.
func (h *Handler) EditTodoForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/view")
	}

	switch c.FormValue("action") {
	case "update":
		dto := UpdateTodoDTO{IsDone: boolPtr(c.FormValue("is_done") == "on")}
		if title := c.FormValue("title"); title != "" {
			dto.Title = &title
		}
		if _, err := h.todos.Update(id, dto); err != nil && !errors.Is(err, ErrNotFound) {
			fmt.Println("Error updating todo:", err)
		}
	case "delete":
		if err := h.todos.Delete(id); err != nil && !errors.Is(err, ErrNotFound) {
			fmt.Println("Error deleting todo:", err)
		}
	}
	return c.Redirect(http.StatusSeeOther, "/view")
}

// ViewBooks renders the book table, filtered by the optional query param
func (h *Handler) ViewBooks(c echo.Context) error {
	query := c.QueryParam("query")

	var (
		books []Book
		err   error
	)
	if query != "" {
		books, err = h.books.Search(query)
	} else {
		books, err = h.books.All()
	}
	if err != nil {
		fmt.Println("Error listing books:", err)
		return err
	}

	data := struct {
		Query string
		Books []BookResponse
	}{Query: query, Books: bookResponses(books)}
	return renderView(c, bookViewTmpl, data)
}

// AddBookForm creates a book from the add form and redirects back to the
// list. Blank optional inputs are stored as NULL; malformed numbers are
// dropped rather than rejected.
func (h *Handler) AddBookForm(c echo.Context) error {
	title := c.FormValue("title")
	if title != "" {
		dto := CreateBookDTO{
			Title:          title,
			IsDiscontinued: c.FormValue("is_discontinued") == "on",
			Rating:         parseFloatField(c.FormValue("rating")),
			Quantity:       parseIntField(c.FormValue("quantity")),
		}
		if category := c.FormValue("category"); category != "" {
			dto.Category = &category
		}
		if _, err := h.books.Create(dto); err != nil {
			fmt.Println("Error inserting book:", err)
		}
	}
	return c.Redirect(http.StatusSeeOther, "/bookview")
}

// EditBookForm dispatches a row form submission to update or delete, then
// redirects back to the list. Blank inputs leave the stored value alone.
func (h *Handler) EditBookForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/bookview")
	}

	switch c.FormValue("action") {
	case "update":
		dto := UpdateBookDTO{
			IsDiscontinued: boolPtr(c.FormValue("is_discontinued") == "on"),
			Rating:         parseFloatField(c.FormValue("rating")),
			Quantity:       parseIntField(c.FormValue("quantity")),
		}
		if title := c.FormValue("title"); title != "" {
			dto.Title = &title
		}
		if category := c.FormValue("category"); category != "" {
			dto.Category = &category
		}
		if _, err := h.books.Update(id, dto); err != nil && !errors.Is(err, ErrNotFound) {
			fmt.Println("Error updating book:", err)
		}
	case "delete":
		if err := h.books.Delete(id); err != nil && !errors.Is(err, ErrNotFound) {
			fmt.Println("Error deleting book:", err)
		}
	}
	return c.Redirect(http.StatusSeeOther, "/bookview")
}

func boolPtr(b bool) *bool {
	return &b
}

func parseFloatField(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseIntField(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
