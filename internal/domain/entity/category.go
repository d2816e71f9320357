package entity

import (
	"time"
)

// Category is one node of the shared two-level taxonomy. Root categories
// have an empty ParentID; subcategories never have children of their own.
type Category struct {
	ID       string `json:"id" firestore:"id"`
	Name     string `json:"name" firestore:"name"`
	Slug     string `json:"slug" firestore:"slug"`
	Color    string `json:"color,omitempty" firestore:"color,omitempty"`
	// ParentID is stored even when empty: the root-category query filters
	// on parentId == "" and an absent field matches no equality filter.
	ParentID string `json:"parent_id,omitempty" firestore:"parentId"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`

	// Populated when fetched with depth >= 1, never stored.
	Subcategories []*Category `json:"subcategories,omitempty" firestore:"-"`
}
