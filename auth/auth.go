package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"gurukul/db"
	"gurukul/middleware"
	"gurukul/models"
	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"username": req.Username}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := middleware.CreateToken(user.ID.Hex(), user.Username, user.Role, tokenTTL)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"lastLogin": time.Now()}}); err != nil {
		log.Printf("login: lastLogin update failed for %s: %v", user.Username, err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token": token,
		"user":  user,
	})
}

// Logout exists for API symmetry; tokens are stateless and simply expire.
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// EnsureAdmin seeds the admin account on first boot from ADMIN_USERNAME
// and ADMIN_PASSWORD. Does nothing when the account already exists.
func EnsureAdmin(ctx context.Context) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("admin seed skipped: ADMIN_USERNAME/ADMIN_PASSWORD not set")
		return nil
	}

	err := db.UserCollection.FindOne(ctx, bson.M{"username": username}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.UserCollection.InsertOne(ctx, models.User{
		Username:  username,
		Password:  string(hash),
		Role:      "admin",
		CreatedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	log.Printf("seeded admin account %q", username)
	return nil
}
