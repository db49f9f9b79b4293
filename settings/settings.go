package settings

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"gurukul/db"
	"gurukul/imghost"
	"gurukul/models"
	"gurukul/rdx"
	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const cacheKey = "settings:public"

// Load returns the singleton settings document, or an empty one when the
// site has never been configured.
func Load(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := db.SettingsCollection.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return &models.SiteSettings{Socials: map[string]string{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func GetSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	settings, err := Load(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	if payload, err := utils.ToJSON(settings); err == nil {
		rdx.RdxSet(cacheKey, payload)
	}
	utils.RespondWithJSON(w, http.StatusOK, settings)
}

// UpdateSettings upserts the singleton document. The logo travels as a
// multipart file alongside the text fields.
func UpdateSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	existing, err := Load(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	settings := models.SiteSettings{
		SiteName:   r.FormValue("siteName"),
		Tagline:    r.FormValue("tagline"),
		Phone:      r.FormValue("phone"),
		Email:      r.FormValue("email"),
		Address:    r.FormValue("address"),
		FooterText: r.FormValue("footerText"),
		Logo:       existing.Logo,
		UpdatedAt:  time.Now(),
	}
	if settings.SiteName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Site name is required")
		return
	}

	if socialsRaw := r.FormValue("socials"); socialsRaw != "" {
		socials := map[string]string{}
		if err := json.Unmarshal([]byte(socialsRaw), &socials); err == nil {
			settings.Socials = socials
		}
	}
	if seoRaw := r.FormValue("seo"); seoRaw != "" {
		var seo models.SEO
		if err := json.Unmarshal([]byte(seoRaw), &seo); err == nil {
			settings.SEO = &seo
		}
	}

	if file, header, ferr := r.FormFile("logo"); ferr == nil {
		defer file.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		logo, uerr := imghost.Replace(ctx, imghost.Active, existing.Logo, file, "settings", r.FormValue("logoAlt"))
		if uerr != nil {
			log.Printf("settings logo upload: %v", uerr)
			utils.RespondWithError(w, http.StatusInternalServerError, "Logo upload failed")
			return
		}
		settings.Logo = logo
	}

	_, err = db.SettingsCollection.UpdateOne(ctx, bson.M{},
		bson.M{"$set": settings}, options.Update().SetUpsert(true))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	rdx.RdxDel(cacheKey, "home")
	utils.RespondWithJSON(w, http.StatusOK, settings)
}
