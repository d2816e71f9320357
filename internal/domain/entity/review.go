package entity

import (
	"time"
)

// ProductRef is a relationship to a product. At depth 0 only the id is
// present; at depth 1 and above the full document is resolved alongside it.
type ProductRef struct {
	ID       string   `json:"id" firestore:"id"`
	Resolved *Product `json:"product,omitempty" firestore:"-"`
}

// Key normalizes the reference to a bare identifier regardless of the
// depth it was fetched with. Every consumer that groups or compares by
// product must go through this.
func (r ProductRef) Key() string {
	if r.Resolved != nil {
		return r.Resolved.ID
	}
	return r.ID
}

type Review struct {
	ID          string     `json:"id" firestore:"id"`
	Product     ProductRef `json:"product" firestore:"product"`
	UserID      string     `json:"user_id" firestore:"userId"`
	Rating      int        `json:"rating" firestore:"rating"` // 1-5
	Description string     `json:"description" firestore:"description"`
	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" firestore:"updatedAt"`
}
