package book

import "errors"

var (
	// ErrBookNotFound is returned by a Repository when no book matches an id.
	ErrBookNotFound = errors.New("book not found")
	// ErrAuthorNotFound is returned by a Repository when no author matches an id.
	ErrAuthorNotFound = errors.New("author not found")
)

// Messages carried by Response.Message.
const (
	MsgCollected      = "collected"
	MsgNoBookFound    = "no book found"
	MsgNoAuthorBooks  = "no books found for author"
	MsgBookNotFound   = "book not found"
	MsgAuthorNotFound = "author not found"
	MsgBookCreated    = "book created"
	MsgBookUpdated    = "book updated"
	MsgBookDeleted    = "book deleted"
)

// Response is the envelope returned by every Service operation.
// Success is false only for unexpected failures; a lookup that finds
// nothing leaves Success true with Data nil and Message set.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

func newResponse[T any]() Response[T] {
	return Response[T]{Success: true}
}

// NotFound reports a successful call that produced no data.
func (r Response[T]) NotFound() bool {
	return r.Success && r.Data == nil
}

type CreateBookRequest struct {
	Title    string `json:"title" validate:"required,notblank,max=255"`
	AuthorID int64  `json:"author_id" validate:"required,gt=0"`
}

type EditBookRequest struct {
	ID       int64  `json:"id" validate:"required,gt=0"`
	Title    string `json:"title" validate:"required,notblank,max=255"`
	AuthorID int64  `json:"author_id" validate:"required,gt=0"`
}
