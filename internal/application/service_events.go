package application

const (
	eventTypeUserRegistered      = "user.registered"
	eventTypeOrderCreated        = "order.created"
	eventTypeNotificationCreated = "notification.created"
)
