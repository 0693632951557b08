package main

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "modernc.org/sqlite"
)

func main() {
	cfg := LoadConfig()

	db, err := sql.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		panic(fmt.Sprintf("Failed to open database: %v", err))
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to ping database: %v", err))
	}

	if err = CreateTables(db, cfg.DBDriver); err != nil {
		panic(fmt.Sprintf("Failed to create tables: %v", err))
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	h := NewHandler(NewTodoStore(db), NewBookStore(db))
	Route(e, h)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
