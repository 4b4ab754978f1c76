package entities

// PipelineStatus is the kanban column shared by leads and projects.
//
// Domain notes:
//   - Both boards use the same four columns; moving a card only changes
//     this field, it never touches items or totals.

type PipelineStatus string

const (
	StatusNew        PipelineStatus = "new"
	StatusDiscussion PipelineStatus = "discussion"
	StatusWon        PipelineStatus = "won"
	StatusLost       PipelineStatus = "lost"
)

func (s PipelineStatus) Valid() bool {
	switch s {
	case StatusNew, StatusDiscussion, StatusWon, StatusLost:
		return true
	}
	return false
}
