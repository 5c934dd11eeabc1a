package notify

import "github.com/rs/zerolog"

// Variants for user-visible notifications.
const (
	VariantDefault     = ""
	VariantDestructive = "destructive"
)

// Notification is one user-visible message.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"`
}

// Notifier delivers notifications to the user. Implementations are
// fire-and-forget and must never block the caller on delivery.
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to the structured log. It stands in for
// a client-facing toast channel in headless deployments and tests.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With().Str("component", "notifier").Logger()}
}

// Notify logs the notification.
func (n *LogNotifier) Notify(msg Notification) {
	evt := n.logger.Info()
	if msg.Variant == VariantDestructive {
		evt = n.logger.Warn()
	}
	evt.Str("title", msg.Title).
		Str("description", msg.Description).
		Msg("notification")
}
