package entities

import "time"

// Lead is a sales opportunity tracked on the kanban board.
//
// Domain notes:
//   - Independent of projects: ProjectID is optional metadata linking the
//     lead to a realized quote.
//   - EstimatedValue is free-form, entered by the salesperson; it is not
//     derived from any project total.
type Lead struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Status         PipelineStatus `json:"status"`
	CustomerID     string         `json:"customer"`
	ProjectID      string         `json:"project,omitempty"`
	EstimatedValue float64        `json:"estimatedValue"`
	Source         string         `json:"source"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
