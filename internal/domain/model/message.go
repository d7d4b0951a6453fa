package model

import "time"

// MessageStatus is the contact message triage enumeration.
type MessageStatus string

const (
	MessageStatusUnread  MessageStatus = "unread"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

// ValidMessageStatus reports whether s is a member of the declared set.
func ValidMessageStatus(s MessageStatus) bool {
	switch s {
	case MessageStatusUnread, MessageStatusRead, MessageStatusReplied:
		return true
	}
	return false
}

// ContactMessage is a public contact form submission.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    MessageStatus
	CreatedAt time.Time
}
