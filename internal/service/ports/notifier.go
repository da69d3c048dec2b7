package ports

import (
	"context"

	"github.com/ikaros55439147/craft-booking/internal/domain"
)

// Notifier delivers user-facing notifications. Implementations log
// delivery failures instead of returning them.
type Notifier interface {
	Notify(ctx context.Context, user *domain.User, n domain.Notification)
}
