package domain

const (
	NotificationRegistrationConfirmed  = "registration_confirmed"
	NotificationRegistrationWaitlisted = "registration_waitlisted"
	NotificationWaitlistPromoted       = "waitlist_promoted"
	NotificationRegistrationCancelled  = "registration_cancelled"
	NotificationOrderCreated           = "order_created"
	NotificationOrderCancelled         = "order_cancelled"
	NotificationPaymentDeclined        = "payment_declined"
)

// Notification is the payload handed to the Notifier port. Delivery is
// fire-and-forget; failures are logged, never propagated.
type Notification struct {
	Type     string
	Title    string
	Message  string
	Metadata map[string]string
}
