// Package model defines the records stored in the JSON collection
// documents. Field tags keep the original Portuguese document format, so
// data files written by earlier deployments load unchanged.
package model

// User is a registered account. Username is unique among stored users;
// Password holds a bcrypt hash, never the raw password.
type User struct {
	Name     string `json:"nome" form:"nome"`
	Username string `json:"usuario" form:"usuario"`
	Password string `json:"senha" form:"senha"`
}

// Book is a catalog record. Title is the de-facto key used by lookups;
// duplicates are allowed in storage, Id disambiguates them.
type Book struct {
	Id     string `json:"id"`
	Title  string `json:"titulo" form:"titulo"`
	Author string `json:"autor" form:"autor"`
}

// Loan links a username to a book title. Date is the borrow day in
// dd/mm/yyyy; Returned flips to true exactly once and never back.
type Loan struct {
	Id       string `json:"id"`
	Username string `json:"usuario"`
	Title    string `json:"titulo"`
	Date     string `json:"data"`
	Returned bool   `json:"entregue"`
}

// LoanDateFormat is the layout of Loan.Date.
const LoanDateFormat = "02/01/2006"

// Message is a contact-form submission. Reply stays empty until an admin
// answers it.
type Message struct {
	Name  string `json:"nome" form:"nome"`
	Email string `json:"email" form:"email"`
	Body  string `json:"mensagem" form:"mensagem"`
	Reply string `json:"resposta" form:"resposta"`
}
