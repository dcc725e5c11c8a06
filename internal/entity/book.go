package entity

// Author is referenced by books. It is managed outside this service and only read here.
type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Book struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	AuthorID int64   `json:"author_id"`
	Author   *Author `json:"author,omitempty"`
}
