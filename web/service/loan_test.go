package service

import (
	"testing"
	"time"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/storage/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowStampsTodayAndNotReturned(t *testing.T) {
	setup(t)
	service := LoanService{}

	loan, err := service.Borrow("alice", "Dune")
	require.NoError(t, err)
	assert.NotEmpty(t, loan.Id)
	assert.Equal(t, "alice", loan.Username)
	assert.Equal(t, "Dune", loan.Title)
	assert.Equal(t, time.Now().Format(model.LoanDateFormat), loan.Date)
	assert.False(t, loan.Returned)
}

func TestReturnFlipsFlagAndKeepsDate(t *testing.T) {
	setup(t)
	service := LoanService{}

	borrowed, err := service.Borrow("alice", "Dune")
	require.NoError(t, err)

	require.NoError(t, service.Return("alice", "Dune"))

	loans, err := service.ListMine("alice")
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.True(t, loans[0].Returned)
	assert.Equal(t, borrowed.Date, loans[0].Date)
}

func TestReturnMarksEveryMatchingLoan(t *testing.T) {
	setup(t)
	service := LoanService{}

	_, err := service.Borrow("alice", "Dune")
	require.NoError(t, err)
	_, err = service.Borrow("alice", "Dune")
	require.NoError(t, err)
	_, err = service.Borrow("bob", "Dune")
	require.NoError(t, err)

	require.NoError(t, service.Return("alice", "Dune"))

	all, err := service.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].Returned)
	assert.True(t, all[1].Returned)
	// bob's loan stays open
	assert.False(t, all[2].Returned)
}

func TestListMineFiltersByUsername(t *testing.T) {
	setup(t)
	service := LoanService{}

	_, err := service.Borrow("alice", "Dune")
	require.NoError(t, err)
	_, err = service.Borrow("bob", "Neuromancer")
	require.NoError(t, err)
	_, err = service.Borrow("alice", "Fundação")
	require.NoError(t, err)

	mine, err := service.ListMine("alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	// insertion order preserved
	assert.Equal(t, "Dune", mine[0].Title)
	assert.Equal(t, "Fundação", mine[1].Title)
	for _, l := range mine {
		assert.Equal(t, "alice", l.Username)
	}
}

func TestReturnWithoutLoanIsNoop(t *testing.T) {
	setup(t)
	service := LoanService{}

	assert.NoError(t, service.Return("alice", "Dune"))

	all, err := service.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}
