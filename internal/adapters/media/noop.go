package media

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/skillstream/lms-backend/internal/ports"
)

// NoopUploader stands in when no media provider is configured. It fabricates
// stable references from the payload so the rest of the system behaves
// normally in development.
type NoopUploader struct{}

func (NoopUploader) Upload(_ context.Context, data string, folder string) (ports.UploadedAsset, error) {
	sum := sha256.Sum256([]byte(data))
	id := folder + "/" + hex.EncodeToString(sum[:8])
	return ports.UploadedAsset{PublicID: id, URL: "local://" + id}, nil
}

func (NoopUploader) Destroy(context.Context, string) error {
	return nil
}
