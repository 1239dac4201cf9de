package ports

import (
	"context"

	"github.com/skillstream/lms-backend/internal/domain"
)

// Mail is a single outbound message. Delivery is attempted once; there are
// no retries or delivery guarantees beyond the SMTP handshake.
type Mail struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// UploadedAsset is the provider's reference for a stored media object.
type UploadedAsset struct {
	PublicID string
	URL      string
}

// MediaUploader stores and removes user-supplied media (avatars, course
// thumbnails, layout banners) with a third-party provider.
type MediaUploader interface {
	Upload(ctx context.Context, data string, folder string) (UploadedAsset, error)
	Destroy(ctx context.Context, publicID string) error
}

// PaymentVerifier confirms a payment reference with the provider. One
// attempt, no protocol handling; a failed confirmation fails the order.
type PaymentVerifier interface {
	Confirm(ctx context.Context, info domain.PaymentInfo) error
}
