package model

import (
	"time"
)

// QuoteRequest is a customer inquiry. Rows are append-only: there is no update
// or delete path. CreatedAt is nullable at the column level; a missing
// timestamp sorts as oldest in the activity feed.
type QuoteRequest struct {
	ID              int        `db:"id" json:"id"`
	FirstName       string     `db:"first_name" json:"firstName"`
	LastName        string     `db:"last_name" json:"lastName"`
	Email           string     `db:"email" json:"email"`
	Phone           *string    `db:"phone" json:"phone"`
	Company         *string    `db:"company" json:"company"`
	ProductInterest *string    `db:"product_interest" json:"productInterest"`
	Message         string     `db:"message" json:"message"`
	CreatedAt       *time.Time `db:"created_at" json:"createdAt"`
}

type CreateQuoteRequestParams struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           *string
	Company         *string
	ProductInterest *string
	Message         string
}
