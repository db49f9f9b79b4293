package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Result struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentName string             `bson:"studentName" json:"studentName"`
	ExamName    string             `bson:"examName" json:"examName"`
	Rank        string             `bson:"rank,omitempty" json:"rank,omitempty"`
	Year        int                `bson:"year" json:"year"`
	Score       string             `bson:"score,omitempty" json:"score,omitempty"`
	Image       *Image             `bson:"image,omitempty" json:"image,omitempty"`
	Active      bool               `bson:"active" json:"active"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Testimonial struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Designation string             `bson:"designation,omitempty" json:"designation,omitempty"`
	Message     string             `bson:"message" json:"message"`
	Rating      int                `bson:"rating,omitempty" json:"rating,omitempty"`
	Image       *Image             `bson:"image,omitempty" json:"image,omitempty"`
	Active      bool               `bson:"active" json:"active"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Slider struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Subtitle  string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	Order     int                `bson:"order" json:"order"`
	Image     *Image             `bson:"image,omitempty" json:"image,omitempty"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type GalleryImage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Image     *Image             `bson:"image,omitempty" json:"image,omitempty"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Page struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Slug      string             `bson:"slug" json:"slug"`
	Content   string             `bson:"content" json:"content"`
	SEO       *SEO               `bson:"seo,omitempty" json:"seo,omitempty"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SiteSettings struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SiteName   string             `bson:"siteName" json:"siteName"`
	Tagline    string             `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Logo       *Image             `bson:"logo,omitempty" json:"logo,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Address    string             `bson:"address,omitempty" json:"address,omitempty"`
	Socials    map[string]string  `bson:"socials,omitempty" json:"socials,omitempty"`
	FooterText string             `bson:"footerText,omitempty" json:"footerText,omitempty"`
	SEO        *SEO               `bson:"seo,omitempty" json:"seo,omitempty"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
