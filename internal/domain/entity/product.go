package entity

import (
	"time"
)

type Product struct {
	ID           string   `json:"id" firestore:"id"`
	TenantID     string   `json:"tenant_id" firestore:"tenantId"`
	TenantSlug   string   `json:"tenant_slug" firestore:"tenantSlug"`
	CategoryID   string   `json:"category_id,omitempty" firestore:"categoryId,omitempty"`
	CategorySlug string   `json:"category_slug,omitempty" firestore:"categorySlug,omitempty"`
	Name         string   `json:"name" firestore:"name"`
	Description  string   `json:"description" firestore:"description"`
	Price        float64  `json:"price" firestore:"price"`
	Tags         []string `json:"tags" firestore:"tags"`

	// Content holds the digital goods delivered after purchase. It is
	// excluded from list queries and only loaded through the library.
	Content string `json:"content,omitempty" firestore:"content,omitempty"`

	IsArchived bool `json:"is_archived" firestore:"isArchived"`
	IsPrivate  bool `json:"is_private" firestore:"isPrivate"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`

	// Populated when fetched with depth >= 1, never stored.
	Tenant   *Tenant   `json:"tenant,omitempty" firestore:"-"`
	Category *Category `json:"category,omitempty" firestore:"-"`
}
