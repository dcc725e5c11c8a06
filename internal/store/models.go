package store

import "bookservice/internal/entity"

// GORM models used for persistence. Table names match db/migrations.
type AuthorModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (AuthorModel) TableName() string { return "authors" }

type BookModel struct {
	ID       int64       `gorm:"primaryKey"`
	Title    string      `gorm:"not null"`
	AuthorID int64       `gorm:"not null;index"`
	Author   AuthorModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
}

func (BookModel) TableName() string { return "books" }

func authorFromModel(m AuthorModel) entity.Author {
	return entity.Author{ID: m.ID, Name: m.Name}
}

func bookFromModel(m BookModel) entity.Book {
	b := entity.Book{
		ID:       m.ID,
		Title:    m.Title,
		AuthorID: m.AuthorID,
	}
	if m.Author.ID != 0 {
		a := authorFromModel(m.Author)
		b.Author = &a
	}
	return b
}

func booksFromModels(models []BookModel) []entity.Book {
	res := make([]entity.Book, 0, len(models))
	for _, m := range models {
		res = append(res, bookFromModel(m))
	}
	return res
}

// bookToModel leaves Author empty so that saving a book never writes the author row.
func bookToModel(b entity.Book) BookModel {
	return BookModel{
		ID:       b.ID,
		Title:    b.Title,
		AuthorID: b.AuthorID,
	}
}
