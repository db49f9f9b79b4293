package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Installment struct {
	Label  string  `bson:"label" json:"label"`
	Amount float64 `bson:"amount" json:"amount"`
}

type Course struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	Description   string             `bson:"description" json:"description"`
	Duration      string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Installments  []Installment      `bson:"installments" json:"installments"`
	Videos        []string           `bson:"videos" json:"videos"`
	Features      []string           `bson:"features" json:"features"`
	Image         *Image             `bson:"image,omitempty" json:"image,omitempty"`
	SEO           *SEO               `bson:"seo,omitempty" json:"seo,omitempty"`
	Active        bool               `bson:"active" json:"active"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
