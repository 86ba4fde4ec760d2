package services

import (
	"context"
	"strings"

	"golang.org/x/exp/slices"

	"societyWeb/internal/models"
	"societyWeb/internal/remote"
)

type ComplaintService struct {
	API *remote.Client
}

// ComplaintFilter narrows the complaint list client-side. The remote API
// returns the full set for the user; status, category and free-text search
// are applied here.
type ComplaintFilter struct {
	Status   string
	Category string
	Query    string
}

func (s *ComplaintService) ListComplaints(ctx context.Context, token string, filter ComplaintFilter) ([]models.Complaint, error) {
	complaints, err := s.API.Complaints(ctx, token)
	if err != nil {
		return nil, err
	}
	filtered := FilterComplaints(complaints, filter)
	slices.SortFunc(filtered, func(a, b models.Complaint) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return filtered, nil
}

// FilterComplaints applies the filter in memory. Matching is
// case-insensitive; the query searches title and description.
func FilterComplaints(complaints []models.Complaint, filter ComplaintFilter) []models.Complaint {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if filter.Status != "" && !strings.EqualFold(c.Status, filter.Status) {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(c.Category, filter.Category) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Title), query) &&
			!strings.Contains(strings.ToLower(c.Description), query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (s *ComplaintService) GetComplaint(ctx context.Context, token string, id int) (models.Complaint, error) {
	return s.API.ComplaintByID(ctx, token, id)
}

func (s *ComplaintService) CreateComplaint(ctx context.Context, token string, req models.CreateComplaintRequest) (models.Complaint, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Complaint{}, &models.ValidationError{Field: "title", Reason: "is required"}
	}
	if strings.TrimSpace(req.Category) == "" {
		return models.Complaint{}, &models.ValidationError{Field: "category", Reason: "is required"}
	}
	if strings.TrimSpace(req.Description) == "" {
		return models.Complaint{}, &models.ValidationError{Field: "description", Reason: "is required"}
	}
	return s.API.CreateComplaint(ctx, token, req)
}

func (s *ComplaintService) AddComment(ctx context.Context, token string, complaintID int, text string) (models.ComplaintComment, error) {
	if strings.TrimSpace(text) == "" {
		return models.ComplaintComment{}, &models.ValidationError{Field: "text", Reason: "is required"}
	}
	return s.API.AddComplaintComment(ctx, token, complaintID, text)
}
