package book

import (
	"context"

	"bookservice/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the persistence contract the Service depends on.
// Implementations return ErrBookNotFound / ErrAuthorNotFound for missing rows
// and load the Author of every book they return.
type Repository interface {
	FindBook(ctx context.Context, id int64) (entity.Book, error)
	FindAuthor(ctx context.Context, id int64) (entity.Author, error)
	ListBooks(ctx context.Context) ([]entity.Book, error)
	ListBooksByAuthor(ctx context.Context, authorID int64) ([]entity.Book, error)
	// CreateBook inserts b and sets b.ID.
	CreateBook(ctx context.Context, b *entity.Book) error
	UpdateBook(ctx context.Context, b *entity.Book) error
	DeleteBook(ctx context.Context, id int64) error
}
