package boardclient

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Event names as broadcast by the server.
const (
	EventTaskCreated = "task-created"
	EventTaskUpdated = "task-updated"
	EventTaskDeleted = "task-deleted"
)

// Envelope is one broadcast message as received over the websocket.
type Envelope struct {
	Event         string          `json:"event"`
	Room          string          `json:"room"`
	Data          json.RawMessage `json:"data"`
	CorrelationID string          `json:"correlationId"`
}

// TaskView is a reconciled view of one card's task list. It merges the
// caller's own optimistic mutations with the event stream so that
// echoes of the view's own writes and repeated deliveries never produce
// duplicates.
type TaskView struct {
	client  *Client
	boardID string
	cardID  string

	mu      sync.Mutex
	tasks   map[string]Task
	pending map[string]string // correlation id -> optimistic placeholder id
}

// NewTaskView creates an empty view over one card. Call Load before
// rendering.
func NewTaskView(client *Client, boardID, cardID string) *TaskView {
	return &TaskView{
		client:  client,
		boardID: boardID,
		cardID:  cardID,
		tasks:   make(map[string]Task),
		pending: make(map[string]string),
	}
}

// Load replaces the view with a full fetch from the server.
func (v *TaskView) Load(ctx context.Context) error {
	tasks, err := v.client.ListTasks(ctx, v.boardID, v.cardID)
	if err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tasks = make(map[string]Task, len(tasks))
	for _, t := range tasks {
		v.tasks[t.ID] = t
	}
	return nil
}

// Tasks returns the current task list, oldest first.
func (v *TaskView) Tasks() []Task {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Task, 0, len(v.tasks))
	for _, t := range v.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Get returns a task by id.
func (v *TaskView) Get(taskID string) (Task, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	t, ok := v.tasks[taskID]
	return t, ok
}

// ApplyEvent folds one broadcast into the view. Unknown events and
// events for other cards are ignored. Applying the same event twice is
// harmless.
func (v *TaskView) ApplyEvent(env Envelope) {
	if env.Room != "" && env.Room != "card:"+v.cardID {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	switch env.Event {
	case EventTaskCreated:
		var t Task
		if err := json.Unmarshal(env.Data, &t); err != nil || t.ID == "" {
			return
		}
		// An echo of our own create may arrive before or after the
		// HTTP response. Drop the placeholder either way; keyed by id
		// the insert itself is already idempotent.
		if tempID, ok := v.pending[env.CorrelationID]; ok {
			delete(v.tasks, tempID)
			delete(v.pending, env.CorrelationID)
		}
		v.tasks[t.ID] = t
	case EventTaskUpdated:
		var t Task
		if err := json.Unmarshal(env.Data, &t); err != nil || t.ID == "" {
			return
		}
		if _, ok := v.tasks[t.ID]; ok {
			v.tasks[t.ID] = t
		}
	case EventTaskDeleted:
		var id string
		if err := json.Unmarshal(env.Data, &id); err != nil {
			return
		}
		delete(v.tasks, id)
	}
}

// CreateTask inserts an optimistic placeholder, sends the create, and
// swaps in the server's task once the response lands.
func (v *TaskView) CreateTask(ctx context.Context, req NewTask) (*Task, error) {
	correlationID := uuid.New().String()
	tempID := "pending-" + correlationID

	status := req.Status
	if status == "" {
		status = StatusIcebox
	}

	v.mu.Lock()
	v.pending[correlationID] = tempID
	v.tasks[tempID] = Task{
		ID:          tempID,
		CardID:      v.cardID,
		BoardID:     v.boardID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	}
	v.mu.Unlock()

	task, err := v.client.CreateTask(ctx, v.boardID, v.cardID, req, correlationID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		delete(v.tasks, tempID)
		delete(v.pending, correlationID)
		return nil, err
	}
	// The event echo may have landed first and already cleared the
	// placeholder. Either order converges on the server's row.
	if tempID, ok := v.pending[correlationID]; ok {
		delete(v.tasks, tempID)
		delete(v.pending, correlationID)
	}
	v.tasks[task.ID] = *task
	return task, nil
}

// UpdateTask applies the patch locally first, then sends it. On failure
// the view is reloaded from the server so no stale optimistic state
// lingers.
func (v *TaskView) UpdateTask(ctx context.Context, taskID string, patch TaskPatch) (*Task, error) {
	correlationID := uuid.New().String()

	v.mu.Lock()
	if t, ok := v.tasks[taskID]; ok {
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		v.tasks[taskID] = t
	}
	v.mu.Unlock()

	task, err := v.client.UpdateTask(ctx, v.boardID, v.cardID, taskID, patch, correlationID)
	if err != nil {
		if reloadErr := v.Load(ctx); reloadErr == nil {
			return nil, err
		}
		return nil, err
	}

	v.mu.Lock()
	v.tasks[task.ID] = *task
	v.mu.Unlock()
	return task, nil
}

// DeleteTask removes the task locally and on the server. If the server
// call fails the view is reloaded so a wrongly dropped task reappears.
func (v *TaskView) DeleteTask(ctx context.Context, taskID string) error {
	correlationID := uuid.New().String()

	v.mu.Lock()
	delete(v.tasks, taskID)
	v.mu.Unlock()

	if err := v.client.DeleteTask(ctx, v.boardID, v.cardID, taskID, correlationID); err != nil {
		_ = v.Load(ctx)
		return err
	}
	return nil
}
