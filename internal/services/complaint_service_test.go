package services

import (
	"testing"
	"time"

	"societyWeb/internal/models"
)

func sampleComplaints() []models.Complaint {
	base := time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
	return []models.Complaint{
		{ID: 1, Title: "Water leakage in bathroom", Category: "plumbing", Status: models.ComplaintOpen, Description: "Ceiling drips near the geyser", CreatedAt: base},
		{ID: 2, Title: "Lift stuck on 3rd floor", Category: "electrical", Status: models.ComplaintInProgress, Description: "Lift B not moving", CreatedAt: base.Add(time.Hour)},
		{ID: 3, Title: "Broken gate latch", Category: "security", Status: models.ComplaintResolved, Description: "Main gate latch rusted", CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestFilterComplaints_ByStatus(t *testing.T) {
	out := FilterComplaints(sampleComplaints(), ComplaintFilter{Status: "open"})
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("expected only complaint 1, got %+v", out)
	}
}

func TestFilterComplaints_ByQuery(t *testing.T) {
	out := FilterComplaints(sampleComplaints(), ComplaintFilter{Query: "LIFT"})
	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("expected only complaint 2, got %+v", out)
	}

	// query matches description too
	out = FilterComplaints(sampleComplaints(), ComplaintFilter{Query: "geyser"})
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("expected only complaint 1, got %+v", out)
	}
}

func TestFilterComplaints_CombinedFilters(t *testing.T) {
	out := FilterComplaints(sampleComplaints(), ComplaintFilter{Category: "plumbing", Query: "lift"})
	if len(out) != 0 {
		t.Fatalf("expected no matches, got %+v", out)
	}
}

func TestFilterComplaints_EmptyFilterKeepsAll(t *testing.T) {
	out := FilterComplaints(sampleComplaints(), ComplaintFilter{})
	if len(out) != 3 {
		t.Fatalf("expected all complaints, got %d", len(out))
	}
}

func TestCompareAnnouncements_PinnedFirst(t *testing.T) {
	old := models.Announcement{ID: 1, Pinned: true, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	fresh := models.Announcement{ID: 2, Pinned: false, CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	if CompareAnnouncements(old, fresh) >= 0 {
		t.Error("pinned announcement must sort before a newer unpinned one")
	}

	a := models.Announcement{ID: 3, CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	b := models.Announcement{ID: 4, CreatedAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)}
	if CompareAnnouncements(b, a) >= 0 {
		t.Error("newer announcement must sort first within the same pin group")
	}
}
