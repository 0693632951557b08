package main

import "database/sql"

// BookStore provides durable CRUD for book records, mirroring TodoStore
type BookStore struct {
	db *sql.DB
}

func NewBookStore(db *sql.DB) *BookStore {
	return &BookStore{db: db}
}

const bookColumns = "id, title, is_discontinued, category, rating, quantity, created_at, updated_at"

func scanBook(row rowScanner) (*Book, error) {
	var (
		book      Book
		category  sql.NullString
		rating    sql.NullFloat64
		quantity  sql.NullInt64
		createdAt string
		updatedAt string
	)
	if err := row.Scan(&book.ID, &book.Title, &book.IsDiscontinued,
		&category, &rating, &quantity, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if category.Valid {
		book.Category = &category.String
	}
	if rating.Valid {
		book.Rating = &rating.Float64
	}
	if quantity.Valid {
		q := int(quantity.Int64)
		book.Quantity = &q
	}

	var err error
	if book.CreatedAt, err = parseStamp(createdAt); err != nil {
		return nil, err
	}
	if book.UpdatedAt, err = parseStamp(updatedAt); err != nil {
		return nil, err
	}
	return &book, nil
}

// All returns every book in natural storage order
func (s *BookStore) All() ([]Book, error) {
	rows, err := s.db.Query("SELECT " + bookColumns + " FROM book")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}
	return books, rows.Err()
}

// Search returns books whose title contains keyword, using the driver's
// native LIKE matching.
func (s *BookStore) Search(keyword string) ([]Book, error) {
	rows, err := s.db.Query("SELECT "+bookColumns+" FROM book WHERE title LIKE ?", "%"+keyword+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}
	return books, rows.Err()
}

// Get returns the book with the given id, or ErrNotFound
func (s *BookStore) Get(id int) (*Book, error) {
	row := s.db.QueryRow("SELECT "+bookColumns+" FROM book WHERE id = ?", id)
	book, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

// Create inserts a new book with fresh timestamps and returns the stored
// row. Optional fields left nil are stored as NULL.
func (s *BookStore) Create(dto CreateBookDTO) (*Book, error) {
	if dto.Title == "" {
		return nil, ErrTitleRequired
	}

	stamp := now().Format(timeLayout)
	result, err := s.db.Exec(`INSERT INTO book
        (title, is_discontinued, category, rating, quantity, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		dto.Title, dto.IsDiscontinued, dto.Category, dto.Rating, dto.Quantity, stamp, stamp)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.Get(int(id))
}

// Update merges the non-nil dto fields onto the stored book, refreshes
// updated_at, and returns the updated row.
func (s *BookStore) Update(id int, dto UpdateBookDTO) (*Book, error) {
	book, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		if *dto.Title == "" {
			return nil, ErrTitleRequired
		}
		book.Title = *dto.Title
	}
	if dto.IsDiscontinued != nil {
		book.IsDiscontinued = *dto.IsDiscontinued
	}
	if dto.Category != nil {
		book.Category = dto.Category
	}
	if dto.Rating != nil {
		book.Rating = dto.Rating
	}
	if dto.Quantity != nil {
		book.Quantity = dto.Quantity
	}

	_, err = s.db.Exec(`UPDATE book
        SET title = ?, is_discontinued = ?, category = ?, rating = ?, quantity = ?, updated_at = ?
        WHERE id = ?`,
		book.Title, book.IsDiscontinued, book.Category, book.Rating, book.Quantity,
		now().Format(timeLayout), id)
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes the book permanently
func (s *BookStore) Delete(id int) error {
	result, err := s.db.Exec("DELETE FROM book WHERE id = ?", id)
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
