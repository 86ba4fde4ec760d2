package remote

import (
	"context"
	"fmt"
	"net/http"

	"societyWeb/internal/models"
)

func (c *Client) Complaints(ctx context.Context, token string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := c.do(ctx, http.MethodGet, "/complaints", token, nil, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (c *Client) ComplaintByID(ctx context.Context, token string, id int) (models.Complaint, error) {
	var complaint models.Complaint
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/complaints/%d", id), token, nil, &complaint); err != nil {
		return models.Complaint{}, err
	}
	return complaint, nil
}

func (c *Client) CreateComplaint(ctx context.Context, token string, req models.CreateComplaintRequest) (models.Complaint, error) {
	var complaint models.Complaint
	if err := c.do(ctx, http.MethodPost, "/complaints", token, req, &complaint); err != nil {
		return models.Complaint{}, err
	}
	return complaint, nil
}

func (c *Client) AddComplaintComment(ctx context.Context, token string, complaintID int, text string) (models.ComplaintComment, error) {
	body := struct {
		Text string `json:"text"`
	}{Text: text}

	var comment models.ComplaintComment
	path := fmt.Sprintf("/complaints/%d/comments", complaintID)
	if err := c.do(ctx, http.MethodPost, path, token, body, &comment); err != nil {
		return models.ComplaintComment{}, err
	}
	return comment, nil
}
