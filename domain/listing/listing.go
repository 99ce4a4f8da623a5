package listing

import (
	"errors"
	"strconv"
	"time"
)

var ErrNotFound = errors.New("listing not found")

// Role says whether the author wants work done or offers to do work.
type Role string

const (
	RoleCustomer  Role = "customer"
	RolePerformer Role = "performer"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RolePerformer
}

// Listing is a posted request or offer of household work. Listings are never
// deleted; the only mutation after creation is the one-time completion.
type Listing struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Role         Role      `json:"role"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	AuthorName   string    `json:"author_name"`
	AuthorPhone  string    `json:"author_phone"`
	Completed    bool      `json:"completed"`
	CompletedBy  string    `json:"completed_by,omitempty"`
}

// NumericPrice concatenates the digit runes of the price text in order and
// parses the result. "1500-5000 ₽" yields 15005000, text with no digits
// yields 0. Derived on demand, never persisted.
func (l Listing) NumericPrice() int64 {
	digits := make([]rune, 0, len(l.Price))
	for _, r := range l.Price {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func (l Listing) Open() bool {
	return !l.Completed
}
