// Package imghost wraps the external image-hosting service. Every entity
// owns at most one asset; the handle in Image.PublicID is what the host
// needs to replace or destroy it.
package imghost

import (
	"context"
	"io"
	"log"
	"os"

	"gurukul/models"
)

type Service interface {
	// Upload stores the image in a folder scoped to the resource type and
	// returns the descriptor persisted on the entity.
	Upload(ctx context.Context, r io.Reader, folder, alt string) (*models.Image, error)
	// Destroy removes the asset behind the given handle.
	Destroy(ctx context.Context, publicID string) error
}

// Active is the service used by all handlers, set once at startup.
var Active Service

// Init picks Cloudinary when CLOUDINARY_URL is configured, otherwise the
// local disk store for development.
func Init() error {
	if os.Getenv("CLOUDINARY_URL") != "" {
		svc, err := NewCloudinary()
		if err != nil {
			return err
		}
		Active = svc
		log.Println("imghost: using cloudinary")
		return nil
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./static/uploads"
	}
	Active = NewLocal(dir)
	log.Printf("imghost: using local store at %s", dir)
	return nil
}

// Replace uploads the new file first and destroys the old asset only after
// the upload succeeded, so a failed upload never loses the existing image.
// The old handle is destroyed exactly once; destroy failures are logged and
// do not fail the request (the entity write is the source of truth).
func Replace(ctx context.Context, svc Service, old *models.Image, file io.Reader, folder, alt string) (*models.Image, error) {
	img, err := svc.Upload(ctx, file, folder, alt)
	if err != nil {
		return nil, err
	}
	if old != nil && old.PublicID != "" {
		if err := svc.Destroy(ctx, old.PublicID); err != nil {
			log.Printf("imghost: failed to destroy replaced asset %s: %v", old.PublicID, err)
		}
	}
	return img, nil
}

// Release destroys an entity's asset on delete. Nil-safe: entities without
// an image are a no-op.
func Release(ctx context.Context, svc Service, img *models.Image) error {
	if img == nil || img.PublicID == "" {
		return nil
	}
	return svc.Destroy(ctx, img.PublicID)
}
