package imghost

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"gurukul/models"
)

// fake service that records calls
type fakeService struct {
	uploads   int
	destroyed []string
	uploadErr error
}

func (f *fakeService) Upload(ctx context.Context, r io.Reader, folder, alt string) (*models.Image, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads++
	return &models.Image{
		URL:      "https://cdn.example.com/" + folder + "/new.jpg",
		PublicID: folder + "/new",
		Alt:      alt,
	}, nil
}

func (f *fakeService) Destroy(ctx context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

func TestReplaceDestroysOldExactlyOnce(t *testing.T) {
	svc := &fakeService{}
	old := &models.Image{URL: "https://cdn.example.com/blogs/old.jpg", PublicID: "blogs/old"}

	img, err := Replace(context.Background(), svc, old, strings.NewReader("data"), "blogs", "cover")
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if img.PublicID != "blogs/new" {
		t.Errorf("new public_id = %q, want %q", img.PublicID, "blogs/new")
	}
	if len(svc.destroyed) != 1 || svc.destroyed[0] != "blogs/old" {
		t.Errorf("destroyed = %v, want exactly [blogs/old]", svc.destroyed)
	}
}

func TestReplaceWithoutOldImage(t *testing.T) {
	svc := &fakeService{}

	_, err := Replace(context.Background(), svc, nil, strings.NewReader("data"), "courses", "")
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if len(svc.destroyed) != 0 {
		t.Errorf("destroy called with no previous image: %v", svc.destroyed)
	}
}

// A failed upload must leave the previous asset untouched.
func TestReplaceFailedUploadKeepsOldAsset(t *testing.T) {
	svc := &fakeService{uploadErr: errors.New("host unavailable")}
	old := &models.Image{PublicID: "sliders/old"}

	_, err := Replace(context.Background(), svc, old, strings.NewReader("data"), "sliders", "")
	if err == nil {
		t.Fatal("expected error from failed upload")
	}
	if len(svc.destroyed) != 0 {
		t.Errorf("old asset destroyed despite failed upload: %v", svc.destroyed)
	}
}

func TestRelease(t *testing.T) {
	svc := &fakeService{}

	if err := Release(context.Background(), svc, &models.Image{PublicID: "gallery/pic"}); err != nil {
		t.Fatalf("Release returned error: %v", err)
	}
	if len(svc.destroyed) != 1 || svc.destroyed[0] != "gallery/pic" {
		t.Errorf("destroyed = %v, want [gallery/pic]", svc.destroyed)
	}
}

func TestReleaseNilImage(t *testing.T) {
	svc := &fakeService{}

	if err := Release(context.Background(), svc, nil); err != nil {
		t.Fatalf("Release(nil) returned error: %v", err)
	}
	if err := Release(context.Background(), svc, &models.Image{}); err != nil {
		t.Fatalf("Release(empty) returned error: %v", err)
	}
	if len(svc.destroyed) != 0 {
		t.Errorf("destroy called for missing image: %v", svc.destroyed)
	}
}
