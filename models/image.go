package models

// Image is the descriptor for an asset held by the external image host.
// PublicID is the host's handle used to replace or destroy the asset.
type Image struct {
	URL       string `bson:"url" json:"url"`
	PublicURL string `bson:"public_url,omitempty" json:"public_url,omitempty"`
	PublicID  string `bson:"public_id" json:"public_id"`
	Alt       string `bson:"alt,omitempty" json:"alt,omitempty"`
}

type SEO struct {
	MetaTitle       string   `bson:"metaTitle,omitempty" json:"metaTitle,omitempty"`
	MetaDescription string   `bson:"metaDescription,omitempty" json:"metaDescription,omitempty"`
	MetaKeywords    []string `bson:"metaKeywords,omitempty" json:"metaKeywords,omitempty"`
	CanonicalURL    string   `bson:"canonicalUrl,omitempty" json:"canonicalUrl,omitempty"`
	OGTitle         string   `bson:"ogTitle,omitempty" json:"ogTitle,omitempty"`
	OGDescription   string   `bson:"ogDescription,omitempty" json:"ogDescription,omitempty"`
	Index           bool     `bson:"index" json:"index"`
	Follow          bool     `bson:"follow" json:"follow"`
}
