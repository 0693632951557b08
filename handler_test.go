package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestServer(t *testing.T) (*echo.Echo, *Handler) {
	t.Helper()

	db := newTestDB(t)
	h := NewHandler(NewTodoStore(db), NewBookStore(db))
	e := echo.New()
	Route(e, h)
	return e, h
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetTodosEmpty(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/todos", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var todos []TodoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &todos); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("expected an empty array, got %v", todos)
	}
}

func TestCreateTodoAPI(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/todos", `{"title":"Buy milk"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	var todo TodoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &todo); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if todo.ID <= 0 {
		t.Errorf("id = %d, want positive", todo.ID)
	}
	if todo.Title != "Buy milk" || todo.IsDone {
		t.Errorf("unexpected record %+v", todo)
	}
	if todo.CreatedAt != todo.UpdatedAt {
		t.Errorf("created_at %q != updated_at %q on create", todo.CreatedAt, todo.UpdatedAt)
	}
	if len(todo.CreatedAt) != len("2006-01-02 15:04:05") {
		t.Errorf("created_at %q not in YYYY-MM-DD HH:MM:SS form", todo.CreatedAt)
	}
}

func TestCreateTodoMissingTitle(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/todos", `{"is_done":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Errorf("expected an error payload, got %s", rec.Body.String())
	}
}

func TestGetTodoNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/todos/999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] != "Todo not found" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestGetTodoInvalidID(t *testing.T) {
	e, _ := newTestServer(t)

	if rec := doJSON(e, http.MethodGet, "/todos/abc", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateTodoMergeAPI(t *testing.T) {
	e, h := newTestServer(t)

	created, err := h.todos.Create(CreateTodoDTO{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rec := doJSON(e, http.MethodPut, "/todos/1", `{"is_done":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var todo TodoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &todo); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if todo.Title != created.Title {
		t.Errorf("title changed to %q; PUT must merge, not replace", todo.Title)
	}
	if !todo.IsDone {
		t.Error("is_done not applied")
	}
}

func TestUpdateTodoNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	if rec := doJSON(e, http.MethodPut, "/todos/5", `{"is_done":true}`); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteTodoAPI(t *testing.T) {
	e, h := newTestServer(t)

	if _, err := h.todos.Create(CreateTodoDTO{Title: "Buy milk"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec := doJSON(e, http.MethodDelete, "/todos/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("delete body should be empty, got %s", rec.Body.String())
	}

	if rec := doJSON(e, http.MethodGet, "/todos/1", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("status after delete = %d, want 404", rec.Code)
	}
	if rec := doJSON(e, http.MethodDelete, "/todos/1", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestSearchBooksParamRequired(t *testing.T) {
	e, _ := newTestServer(t)

	if rec := doJSON(e, http.MethodGet, "/books/search", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSearchBooksAPI(t *testing.T) {
	e, h := newTestServer(t)

	for _, title := range []string{"Harry Potter", "The Hobbit", "Hard Times"} {
		if _, err := h.books.Create(CreateBookDTO{Title: title}); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	rec := doJSON(e, http.MethodGet, "/books/search?title=Har", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var books []BookResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &books); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("got %d matches, want 2: %v", len(books), books)
	}
}

func TestCreateBookNullFieldsPresent(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/books", `{"title":"Harry Potter"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// omitted optionals must be serialized as null, never dropped
	for _, key := range []string{"category", "rating", "quantity"} {
		value, ok := body[key]
		if !ok {
			t.Errorf("key %q missing from response", key)
			continue
		}
		if value != nil {
			t.Errorf("key %q = %v, want null", key, value)
		}
	}
	if body["is_discontinued"] != false {
		t.Errorf("is_discontinued = %v, want false", body["is_discontinued"])
	}
}

func TestUpdateBookPartialAPI(t *testing.T) {
	e, h := newTestServer(t)

	category := "Fantasy"
	if _, err := h.books.Create(CreateBookDTO{Title: "Harry Potter", Category: &category}); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec := doJSON(e, http.MethodPut, "/books/1", `{"rating":4.5,"quantity":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var book BookResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &book); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if book.Category == nil || *book.Category != "Fantasy" {
		t.Errorf("category not preserved: %v", book.Category)
	}
	if book.Rating == nil || *book.Rating != 4.5 {
		t.Errorf("rating not applied: %v", book.Rating)
	}
	if book.Quantity == nil || *book.Quantity != 3 {
		t.Errorf("quantity not applied: %v", book.Quantity)
	}
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}
