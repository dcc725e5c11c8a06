package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookservice/internal/book"
	"bookservice/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultQueryTimeout = 5 * time.Second

// BookGorm implements book.Repository using GORM + Postgres.
type BookGorm struct {
	db      *gorm.DB
	timeout time.Duration
}

var _ book.Repository = (*BookGorm)(nil)

// NewBookGorm returns a repository over db. A non-positive timeout uses the default.
func NewBookGorm(db *gorm.DB, timeout time.Duration) *BookGorm {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &BookGorm{db: db, timeout: timeout}
}

// session scopes a fresh GORM session to ctx with the query timeout applied.
func (r *BookGorm) session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	return r.db.WithContext(ctx), cancel
}

func (r *BookGorm) FindBook(ctx context.Context, id int64) (entity.Book, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var m BookModel
	if err := db.Preload("Author").First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Book{}, book.ErrBookNotFound
		}
		return entity.Book{}, fmt.Errorf("find book %d: %w", id, err)
	}
	return bookFromModel(m), nil
}

func (r *BookGorm) FindAuthor(ctx context.Context, id int64) (entity.Author, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var m AuthorModel
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Author{}, book.ErrAuthorNotFound
		}
		return entity.Author{}, fmt.Errorf("find author %d: %w", id, err)
	}
	return authorFromModel(m), nil
}

// ListBooks returns all books ordered by id.
func (r *BookGorm) ListBooks(ctx context.Context) ([]entity.Book, error) {
	return r.listBooks(ctx)
}

// ListBooksByAuthor returns books filtered by author.
func (r *BookGorm) ListBooksByAuthor(ctx context.Context, authorID int64) ([]entity.Book, error) {
	return r.listBooks(ctx, "author_id = ?", authorID)
}

func (r *BookGorm) listBooks(ctx context.Context, conds ...any) ([]entity.Book, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var models []BookModel
	tx := db.Preload("Author").Order("id ASC")
	if len(conds) > 0 {
		tx = tx.Where(conds[0], conds[1:]...)
	}
	if err := tx.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return booksFromModels(models), nil
}

func (r *BookGorm) CreateBook(ctx context.Context, b *entity.Book) error {
	db, cancel := r.session(ctx)
	defer cancel()

	m := bookToModel(*b)
	if err := db.Omit(clause.Associations).Create(&m).Error; err != nil {
		return fmt.Errorf("create book: %w", translateError(err))
	}
	b.ID = m.ID
	return nil
}

// UpdateBook overwrites title and author_id. A vanished row is reported as ErrBookNotFound.
func (r *BookGorm) UpdateBook(ctx context.Context, b *entity.Book) error {
	db, cancel := r.session(ctx)
	defer cancel()

	res := db.Model(&BookModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"title":     b.Title,
			"author_id": b.AuthorID,
		})
	if res.Error != nil {
		return fmt.Errorf("update book %d: %w", b.ID, translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *BookGorm) DeleteBook(ctx context.Context, id int64) error {
	db, cancel := r.session(ctx)
	defer cancel()

	res := db.Delete(&BookModel{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete book %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}
