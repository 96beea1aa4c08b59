package boardclient

import (
	"context"
	"strings"
)

// columnIDPrefix is how the board UI names its column drop targets.
const columnIDPrefix = "column-"

// DropAction is the single update a finished drag resolves to.
type DropAction struct {
	TaskID    string
	NewStatus string
}

// ResolveDrop maps a finished drag to at most one status change.
// sourceID is the dragged task, targetID is whatever it was released
// on: either a column ("column-<status>") or another task, in which
// case the task adopts that task's column. Returns false when the drag
// should change nothing, so a drop onto itself, onto an unknown target
// or within the same column never triggers a request.
func (v *TaskView) ResolveDrop(sourceID, targetID string) (DropAction, bool) {
	if sourceID == targetID {
		return DropAction{}, false
	}

	source, ok := v.Get(sourceID)
	if !ok {
		return DropAction{}, false
	}

	var newStatus string
	if strings.HasPrefix(targetID, columnIDPrefix) {
		newStatus = strings.TrimPrefix(targetID, columnIDPrefix)
		if !validStatus(newStatus) {
			return DropAction{}, false
		}
	} else {
		target, ok := v.Get(targetID)
		if !ok {
			return DropAction{}, false
		}
		newStatus = target.Status
	}

	if newStatus == source.Status {
		return DropAction{}, false
	}
	return DropAction{TaskID: sourceID, NewStatus: newStatus}, true
}

// ApplyDrop resolves a drag and, if it amounts to a move, sends exactly
// one update carrying the task's current payload with only the status
// changed.
func (v *TaskView) ApplyDrop(ctx context.Context, sourceID, targetID string) error {
	action, ok := v.ResolveDrop(sourceID, targetID)
	if !ok {
		return nil
	}

	source, found := v.Get(action.TaskID)
	if !found {
		return nil
	}

	title := source.Title
	description := source.Description
	_, err := v.UpdateTask(ctx, action.TaskID, TaskPatch{
		Title:       &title,
		Description: &description,
		Status:      &action.NewStatus,
	})
	return err
}
