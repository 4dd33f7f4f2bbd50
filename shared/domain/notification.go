package domain

// UserNotification is a server-side notification from /notifications, not a
// toast.
type UserNotification struct {
	Id        int64  `json:"id"`
	Title     string `json:"title,omitempty"`
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at,omitempty"`
}
