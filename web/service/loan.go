package service

import (
	"time"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/storage"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/storage/model"

	"github.com/google/uuid"
)

// LoanService handles borrow and return against the loans collection.
// Loans reference books by title only; nothing checks that the title
// exists in the catalog or is not already out, matching the original
// lending rules.
type LoanService struct{}

// Borrow appends a loan stamped with today's date and returned=false.
func (s *LoanService) Borrow(username string, title string) (*model.Loan, error) {
	loan := model.Loan{
		Id:       uuid.NewString(),
		Username: username,
		Title:    title,
		Date:     time.Now().Format(model.LoanDateFormat),
		Returned: false,
	}
	err := storage.Update(storage.GetStore(), storage.LoansCollection, func(loans []model.Loan) ([]model.Loan, error) {
		return append(loans, loan), nil
	})
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// Return marks every loan matching both username and title as returned.
// The flag is one-way: once true it never resets, and the borrow date is
// left untouched.
func (s *LoanService) Return(username string, title string) error {
	return storage.Update(storage.GetStore(), storage.LoansCollection, func(loans []model.Loan) ([]model.Loan, error) {
		for i := range loans {
			if loans[i].Title == title && loans[i].Username == username {
				loans[i].Returned = true
			}
		}
		return loans, nil
	})
}

// ListAll returns every loan record in insertion order.
func (s *LoanService) ListAll() ([]model.Loan, error) {
	return storage.Load[model.Loan](storage.GetStore(), storage.LoansCollection)
}

// ListMine returns the loans of one user, in insertion order.
func (s *LoanService) ListMine(username string) ([]model.Loan, error) {
	loans, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	mine := make([]model.Loan, 0, len(loans))
	for _, l := range loans {
		if l.Username == username {
			mine = append(mine, l)
		}
	}
	return mine, nil
}
