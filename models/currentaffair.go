package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CurrentAffair struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Slug        string              `bson:"slug" json:"slug"`
	Content     string              `bson:"content" json:"content"`
	Date        time.Time           `bson:"date" json:"date"`
	Category    *primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	SubCategory *primitive.ObjectID `bson:"subCategory,omitempty" json:"subCategory,omitempty"`
	Image       *Image              `bson:"image,omitempty" json:"image,omitempty"`
	SEO         *SEO                `bson:"seo,omitempty" json:"seo,omitempty"`
	Active      bool                `bson:"active" json:"active"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}
