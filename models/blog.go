package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Blog struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title     string              `bson:"title" json:"title"`
	Slug      string              `bson:"slug" json:"slug"`
	Content   string              `bson:"content" json:"content"`
	Excerpt   string              `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Category  *primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	Tags      []string            `bson:"tags" json:"tags"`
	Image     *Image              `bson:"image,omitempty" json:"image,omitempty"`
	SEO       *SEO                `bson:"seo,omitempty" json:"seo,omitempty"`
	Active    bool                `bson:"active" json:"active"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type BlogCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SubCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	Category  primitive.ObjectID `bson:"category" json:"category"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
