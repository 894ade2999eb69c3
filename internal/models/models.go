package models

import (
	"time"

	"github.com/lib/pq"
)

type Admin struct {
	AdminID            string     `json:"adminId" db:"admin_id"`
	Email              string     `json:"email" db:"email"`
	PasswordHash       string     `json:"-" db:"password_hash"`
	VerificationCode   *string    `json:"-" db:"verification_code"`
	VerificationExpiry *time.Time `json:"-" db:"verification_expiry"`
	IsVerified         bool       `json:"isVerified" db:"is_verified"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
}

type BlogPost struct {
	PostID           string         `json:"postId" db:"post_id"`
	Title            string         `json:"title" db:"title"`
	Slug             string         `json:"slug" db:"slug"`
	ShortDescription string         `json:"shortDescription" db:"short_description"`
	Body             string         `json:"body" db:"body"`
	FeaturedImage    *string        `json:"featuredImage" db:"featured_image"`
	IsPublished      bool           `json:"isPublished" db:"is_published"`
	PublishedAt      *time.Time     `json:"publishedAt" db:"published_at"`
	Tags             pq.StringArray `json:"tags" db:"tags"`
	MetaTitle        *string        `json:"metaTitle" db:"meta_title"`
	MetaDescription  *string        `json:"metaDescription" db:"meta_description"`
	ReadTime         int            `json:"readTime" db:"read_time"`
	Views            int            `json:"views" db:"views"`
	CreatedAt        time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time      `json:"updatedAt" db:"updated_at"`
}

type Product struct {
	ProductID string    `json:"productId" db:"product_id"`
	Title     string    `json:"title" db:"title"`
	Link      string    `json:"link" db:"link"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
