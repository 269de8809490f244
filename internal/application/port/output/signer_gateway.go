package output

import (
	"context"

	"github.com/mizusawah/hatlink/internal/domain/model"
)

// SignerGateway is the wallet boundary: it exposes the connected identity
// and an opaque message-signing capability. A declined prompt surfaces as
// model.ErrUserRejected.
type SignerGateway interface {
	// Address returns the connected identity; zero when disconnected
	Address() model.Identity

	// SignMessage produces a signature over a human-readable message
	SignMessage(ctx context.Context, message string) ([]byte, error)
}
