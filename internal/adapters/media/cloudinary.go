package media

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/skillstream/lms-backend/internal/ports"
)

// CloudinaryUploader stores user-supplied images (avatars, thumbnails,
// banners) with Cloudinary. Uploads take the raw payload as-is, including
// data URLs.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryUploader builds the client from a cloudinary:// URL.
func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryUploader{client: client}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, data string, folder string) (ports.UploadedAsset, error) {
	res, err := u.client.Upload.Upload(ctx, data, uploader.UploadParams{Folder: folder})
	if err != nil {
		return ports.UploadedAsset{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	return ports.UploadedAsset{
		PublicID: res.PublicID,
		URL:      res.SecureURL,
	}, nil
}

func (u *CloudinaryUploader) Destroy(ctx context.Context, publicID string) error {
	if _, err := u.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	return nil
}
