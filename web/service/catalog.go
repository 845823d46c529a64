package service

import (
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/storage"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/storage/model"

	"github.com/google/uuid"
)

// CatalogService handles the admin-managed book collection.
type CatalogService struct{}

// AddBook appends unconditionally; duplicate titles are permitted, each
// record gets its own id.
func (s *CatalogService) AddBook(title string, author string) (*model.Book, error) {
	book := model.Book{
		Id:     uuid.NewString(),
		Title:  title,
		Author: author,
	}
	err := storage.Update(storage.GetStore(), storage.BooksCollection, func(books []model.Book) ([]model.Book, error) {
		return append(books, book), nil
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ListBooks returns all book records in insertion order.
func (s *CatalogService) ListBooks() ([]model.Book, error) {
	return storage.Load[model.Book](storage.GetStore(), storage.BooksCollection)
}

// RemoveBook removes every record whose title matches exactly. Removing an
// absent title is a no-op.
func (s *CatalogService) RemoveBook(title string) error {
	return storage.Update(storage.GetStore(), storage.BooksCollection, func(books []model.Book) ([]model.Book, error) {
		kept := books[:0]
		for _, b := range books {
			if b.Title != title {
				kept = append(kept, b)
			}
		}
		return kept, nil
	})
}
