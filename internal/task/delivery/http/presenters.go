package http

import (
	"errors"
	"time"

	"quartz/internal/model"
	"quartz/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title        string     `json:"title"         binding:"required,min=1,max=255"`
	Description  string     `json:"description"   binding:"max=2000"`
	Priority     string     `json:"priority"      binding:"omitempty,oneof=critical high medium low"`
	DeadlineType string     `json:"deadline_type" binding:"omitempty,oneof=urgent flexible none"`
	EnergyLevel  string     `json:"energy_level"  binding:"omitempty,oneof=high medium low"`
	DueDate      *time.Time `json:"due_date"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:        r.Title,
		Description:  r.Description,
		Priority:     model.TaskPriority(r.Priority),
		DeadlineType: model.DeadlineType(r.DeadlineType),
		EnergyLevel:  model.EnergyLevel(r.EnergyLevel),
		DueDate:      r.DueDate,
	}
}

// ---

type updateReq struct {
	ID           string     `json:"-"` // populated from URI param
	Title        *string    `json:"title"         binding:"omitempty,min=1,max=255"`
	Description  *string    `json:"description"   binding:"omitempty,max=2000"`
	Status       *string    `json:"status"        binding:"omitempty,oneof=todo in_progress done"`
	Priority     *string    `json:"priority"      binding:"omitempty,oneof=critical high medium low"`
	DeadlineType *string    `json:"deadline_type" binding:"omitempty,oneof=urgent flexible none"`
	EnergyLevel  *string    `json:"energy_level"  binding:"omitempty,oneof=high medium low"`
	DueDate      *time.Time `json:"due_date"`
}

func (r updateReq) validate() error {
	if r.ID == "" {
		return errors.New("id is required")
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
	}
	if r.Status != nil {
		s := model.TaskStatus(*r.Status)
		in.Status = &s
	}
	if r.Priority != nil {
		p := model.TaskPriority(*r.Priority)
		in.Priority = &p
	}
	if r.DeadlineType != nil {
		d := model.DeadlineType(*r.DeadlineType)
		in.DeadlineType = &d
	}
	if r.EnergyLevel != nil {
		e := model.EnergyLevel(*r.EnergyLevel)
		in.EnergyLevel = &e
	}
	return in
}

// --- Response DTOs ---

type taskResp struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	DeadlineType string     `json:"deadline_type"`
	EnergyLevel  string     `json:"energy_level"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	AgentName    string     `json:"agent_name"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		DeadlineType: string(t.DeadlineType),
		EnergyLevel:  string(t.EnergyLevel),
		DueDate:      t.DueDate,
		AgentName:    t.AgentName,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

type listResp struct {
	Active []taskResp `json:"active"`
	Done   []taskResp `json:"done"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	resp := listResp{
		Active: make([]taskResp, len(out.Active)),
		Done:   make([]taskResp, len(out.Done)),
	}
	for i, t := range out.Active {
		resp.Active[i] = newTaskResp(t)
	}
	for i, t := range out.Done {
		resp.Done[i] = newTaskResp(t)
	}
	return resp
}
