package models

// NotificationType tags what a notification is about.
type NotificationType string

const (
	NotificationLike        NotificationType = "like"
	NotificationComment     NotificationType = "comment"
	NotificationFollow      NotificationType = "follow"
	NotificationOpportunity NotificationType = "opportunity"
	NotificationAchievement NotificationType = "achievement"
	NotificationMessage     NotificationType = "message"
)

// Actor is the user a notification originates from.
type Actor struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Username string `json:"username"`
}

// Notification is one alert shown to the viewer.
type Notification struct {
	ID          int              `json:"id"`
	Type        NotificationType `json:"type"`
	User        *Actor           `json:"user,omitempty"`
	Content     string           `json:"content"`
	Comment     string           `json:"comment,omitempty"`
	PostPreview string           `json:"postPreview,omitempty"`
	Timestamp   string           `json:"timestamp"`
	Read        bool             `json:"read"`
}

// Clone returns a deep copy of the notification.
func (n Notification) Clone() Notification {
	out := n
	if n.User != nil {
		u := *n.User
		out.User = &u
	}
	return out
}
