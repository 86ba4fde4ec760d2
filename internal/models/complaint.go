package models

import "time"

const (
	ComplaintOpen       = "OPEN"
	ComplaintInProgress = "IN_PROGRESS"
	ComplaintResolved   = "RESOLVED"
	ComplaintClosed     = "CLOSED"
)

type Complaint struct {
	ID          int                `json:"id"`
	UserID      int                `json:"userId"`
	Title       string             `json:"title"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Status      string             `json:"status"`
	AssigneeID  int                `json:"assigneeId,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Comments    []ComplaintComment `json:"comments,omitempty"`
}

type ComplaintComment struct {
	ID          int       `json:"id"`
	ComplaintID int       `json:"complaintId"`
	AuthorID    int       `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateComplaintRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
