package main

import "database/sql"

// TodoStore provides durable CRUD for todo records on top of an injected
// database handle. Timestamps are stamped here, never by callers.
type TodoStore struct {
	db *sql.DB
}

func NewTodoStore(db *sql.DB) *TodoStore {
	return &TodoStore{db: db}
}

const todoColumns = "id, title, is_done, created_at, updated_at"

func scanTodo(row rowScanner) (*Todo, error) {
	var todo Todo
	var createdAt, updatedAt string
	if err := row.Scan(&todo.ID, &todo.Title, &todo.IsDone, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if todo.CreatedAt, err = parseStamp(createdAt); err != nil {
		return nil, err
	}
	if todo.UpdatedAt, err = parseStamp(updatedAt); err != nil {
		return nil, err
	}
	return &todo, nil
}

// All returns every todo in natural storage order
func (s *TodoStore) All() ([]Todo, error) {
	rows, err := s.db.Query("SELECT " + todoColumns + " FROM todo")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *todo)
	}
	return todos, rows.Err()
}

// Search returns todos whose title contains keyword, using the driver's
// native LIKE matching.
func (s *TodoStore) Search(keyword string) ([]Todo, error) {
	rows, err := s.db.Query("SELECT "+todoColumns+" FROM todo WHERE title LIKE ?", "%"+keyword+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *todo)
	}
	return todos, rows.Err()
}

// Get returns the todo with the given id, or ErrNotFound
func (s *TodoStore) Get(id int) (*Todo, error) {
	row := s.db.QueryRow("SELECT "+todoColumns+" FROM todo WHERE id = ?", id)
	todo, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return todo, nil
}

// Create inserts a new todo with fresh timestamps and returns the stored row
func (s *TodoStore) Create(dto CreateTodoDTO) (*Todo, error) {
	if dto.Title == "" {
		return nil, ErrTitleRequired
	}

	stamp := now().Format(timeLayout)
	result, err := s.db.Exec("INSERT INTO todo (title, is_done, created_at, updated_at) VALUES (?, ?, ?, ?)",
		dto.Title, dto.IsDone, stamp, stamp)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.Get(int(id))
}

// Update merges the non-nil dto fields onto the stored todo, refreshes
// updated_at, and returns the updated row.
func (s *TodoStore) Update(id int, dto UpdateTodoDTO) (*Todo, error) {
	todo, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		if *dto.Title == "" {
			return nil, ErrTitleRequired
		}
		todo.Title = *dto.Title
	}
	if dto.IsDone != nil {
		todo.IsDone = *dto.IsDone
	}

	_, err = s.db.Exec("UPDATE todo SET title = ?, is_done = ?, updated_at = ? WHERE id = ?",
		todo.Title, todo.IsDone, now().Format(timeLayout), id)
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes the todo permanently
func (s *TodoStore) Delete(id int) error {
	result, err := s.db.Exec("DELETE FROM todo WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
