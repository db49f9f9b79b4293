package imghost

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gurukul/models"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Local stores assets under baseDir, mirroring the hosted service's
// folder-per-resource layout. Meant for development.
type Local struct {
	baseDir string
}

func NewLocal(baseDir string) *Local {
	return &Local{baseDir: baseDir}
}

func (l *Local) Upload(ctx context.Context, r io.Reader, folder, alt string) (*models.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	id := uuid.New().String()
	dir := filepath.Join(l.baseDir, folder)
	if err := os.MkdirAll(filepath.Join(dir, "thumb"), 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	name := id + ".jpg"
	if err := imaging.Save(img, filepath.Join(dir, name)); err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(dir, "thumb", name)); err != nil {
		return nil, fmt.Errorf("save thumbnail: %w", err)
	}

	publicID := folder + "/" + id
	url := "/static/uploads/" + folder + "/" + name
	return &models.Image{
		URL:       url,
		PublicURL: url,
		PublicID:  publicID,
		Alt:       alt,
	}, nil
}

func (l *Local) Destroy(ctx context.Context, publicID string) error {
	name := publicID + ".jpg"
	if err := os.Remove(filepath.Join(l.baseDir, filepath.FromSlash(name))); err != nil && !os.IsNotExist(err) {
		return err
	}
	dir, file := filepath.Split(filepath.FromSlash(name))
	thumbPath := filepath.Join(l.baseDir, dir, "thumb", file)
	if err := os.Remove(thumbPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
