package book

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bookservice/internal/entity"
)

// Service implements the book operations on top of a Repository.
// No method returns an error or lets a panic escape; failures are
// reported through the Response envelope.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new book service. A nil logger falls back to slog.Default.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// GetBookByID returns one book with its author.
func (s *Service) GetBookByID(ctx context.Context, id int64) (resp Response[entity.Book]) {
	const op = "GetBookByID"
	resp = newResponse[entity.Book]()
	defer recoverInto(s.logger, op, &resp)

	b, err := s.repo.FindBook(ctx, id)
	if errors.Is(err, ErrBookNotFound) {
		resp.Message = MsgNoBookFound
		return resp
	}
	if err != nil {
		fail(s.logger, op, &resp, err)
		return resp
	}

	resp.Data = &b
	resp.Message = MsgCollected
	return resp
}

// GetBooksByAuthorID returns every book written by the given author.
// An author with no books yields an empty list and MsgNoAuthorBooks.
func (s *Service) GetBooksByAuthorID(ctx context.Context, authorID int64) (resp Response[[]entity.Book]) {
	const op = "GetBooksByAuthorID"
	resp = newResponse[[]entity.Book]()
	defer recoverInto(s.logger, op, &resp)

	books, err := s.repo.ListBooksByAuthor(ctx, authorID)
	if err != nil {
		fail(s.logger, op, &resp, err)
		return resp
	}

	books = nonNil(books)
	resp.Data = &books
	if len(books) == 0 {
		resp.Message = MsgNoAuthorBooks
		return resp
	}
	resp.Message = MsgCollected
	return resp
}

// ListBooks returns all books with their authors.
func (s *Service) ListBooks(ctx context.Context) (resp Response[[]entity.Book]) {
	const op = "ListBooks"
	resp = newResponse[[]entity.Book]()
	defer recoverInto(s.logger, op, &resp)

	s.collect(ctx, op, &resp, MsgCollected)
	return resp
}

// CreateBook stores a new book for an existing author and returns the updated list.
func (s *Service) CreateBook(ctx context.Context, req CreateBookRequest) (resp Response[[]entity.Book]) {
	const op = "CreateBook"
	resp = newResponse[[]entity.Book]()
	defer recoverInto(s.logger, op, &resp)

	author, err := s.repo.FindAuthor(ctx, req.AuthorID)
	if errors.Is(err, ErrAuthorNotFound) {
		resp.Message = MsgAuthorNotFound
		return resp
	}
	if err != nil {
		fail(s.logger, op, &resp, err)
		return resp
	}

	b := entity.Book{
		Title:    req.Title,
		AuthorID: author.ID,
		Author:   &author,
	}
	if err := s.repo.CreateBook(ctx, &b); err != nil {
		fail(s.logger, op, &resp, err)
		return resp
	}
	s.logger.InfoContext(ctx, "book created", "book_id", b.ID, "author_id", author.ID)

	s.collect(ctx, op, &resp, MsgBookCreated)
	return resp
}

// EditBook overwrites the title and author of an existing book.
// The book and the author are both looked up before either result is checked.
func (s *Service) EditBook(ctx context.Context, req EditBookRequest) (resp Response[[]entity.Book]) {
	const op = "EditBook"
	resp = newResponse[[]entity.Book]()
	defer recoverInto(s.logger, op, &resp)

	current, bookErr := s.repo.FindBook(ctx, req.ID)
	author, authorErr := s.repo.FindAuthor(ctx, req.AuthorID)

	switch {
	case errors.Is(bookErr, ErrBookNotFound):
		resp.Message = MsgBookNotFound
		return resp
	case bookErr != nil:
		fail(s.logger, op, &resp, bookErr)
		return resp
	}
	switch {
	case errors.Is(authorErr, ErrAuthorNotFound):
		resp.Message = MsgAuthorNotFound
		return resp
	case authorErr != nil:
		fail(s.logger, op, &resp, authorErr)
		return resp
	}

	current.Title = req.Title
	current.AuthorID = author.ID
	current.Author = &author
	if err := s.repo.UpdateBook(ctx, &current); err != nil {
		fail(s.logger, op, &resp, err)
		return resp
	}
	s.logger.InfoContext(ctx, "book updated", "book_id", current.ID, "author_id", author.ID)

	s.collect(ctx, op, &resp, MsgBookUpdated)
	return resp
}

// DeleteBook removes a book and returns the remaining list.
func (s *Service) DeleteBook(ctx context.Context, id int64) (resp Response[[]entity.Book]) {
	const op = "DeleteBook"
	resp = newResponse[[]entity.Book]()
	defer recoverInto(s.logger, op, &resp)

	b, err := s.repo.FindBook(ctx, id)
	if errors.Is(err, ErrBookNotFound) {
		resp.Message = MsgBookNotFound
		return resp
	}
	if err != nil {
		fail(s.logger, op, &resp, err)
		return resp
	}

	if err := s.repo.DeleteBook(ctx, b.ID); err != nil {
		fail(s.logger, op, &resp, err)
		return resp
	}
	s.logger.InfoContext(ctx, "book deleted", "book_id", b.ID)

	s.collect(ctx, op, &resp, MsgBookDeleted)
	return resp
}

// collect loads the full book list into resp.
func (s *Service) collect(ctx context.Context, op string, resp *Response[[]entity.Book], msg string) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		fail(s.logger, op, resp, err)
		return
	}
	books = nonNil(books)
	resp.Data = &books
	resp.Message = msg
}

func fail[T any](logger *slog.Logger, op string, resp *Response[T], err error) {
	resp.Success = false
	resp.Message = err.Error()
	resp.Data = nil
	logger.Error("book operation failed", "op", op, "error", err)
}

func recoverInto[T any](logger *slog.Logger, op string, resp *Response[T]) {
	if r := recover(); r != nil {
		fail(logger, op, resp, fmt.Errorf("panic: %v", r))
	}
}

func nonNil(books []entity.Book) []entity.Book {
	if books == nil {
		return []entity.Book{}
	}
	return books
}
