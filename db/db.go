package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	BlogsCollection          *mongo.Collection
	BlogCategoriesCollection *mongo.Collection
	SubCategoriesCollection  *mongo.Collection
	CoursesCollection        *mongo.Collection
	CurrentAffairsCollection *mongo.Collection
	ResultsCollection        *mongo.Collection
	TestimonialsCollection   *mongo.Collection
	SlidersCollection        *mongo.Collection
	GalleryCollection        *mongo.Collection
	PagesCollection          *mongo.Collection
	SettingsCollection       *mongo.Collection
	UserCollection           *mongo.Collection
	Client                   *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	ClientOptions := options.Client().ApplyURI(uri)
	Client, err = mongo.Connect(context.TODO(), ClientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("institutedb")

	BlogsCollection = database.Collection("blogs")
	BlogCategoriesCollection = database.Collection("blogcategories")
	SubCategoriesCollection = database.Collection("subcategories")
	CoursesCollection = database.Collection("courses")
	CurrentAffairsCollection = database.Collection("currentaffairs")
	ResultsCollection = database.Collection("results")
	TestimonialsCollection = database.Collection("testimonials")
	SlidersCollection = database.Collection("sliders")
	GalleryCollection = database.Collection("gallery")
	PagesCollection = database.Collection("pages")
	SettingsCollection = database.Collection("settings")
	UserCollection = database.Collection("users")
}
