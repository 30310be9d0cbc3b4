package http

import (
	"time"

	"quartz/internal/chat"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Message string `json:"message" binding:"required,max=2000"`
}

func (r sendMessageReq) validate() error { return nil }

func (r sendMessageReq) toInput() chat.MessageInput {
	return chat.MessageInput{Message: r.Message}
}

// --- Response DTOs ---

type commandResp struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	TaskNumber *int    `json:"task_number,omitempty"`
	TaskTitle  string  `json:"task_title,omitempty"`
	Duration   *int    `json:"duration_minutes,omitempty"`
}

type sendMessageResp struct {
	Reply   string      `json:"reply"`
	Command commandResp `json:"command"`
	TaskID  string      `json:"task_id,omitempty"`
	SentAt  time.Time   `json:"sent_at"`
}

func (h *handler) newSendMessageResp(out chat.MessageOutput) sendMessageResp {
	resp := sendMessageResp{
		Reply: out.Reply,
		Command: commandResp{
			Intent:     string(out.Command.Intent),
			Confidence: out.Command.Confidence,
			TaskNumber: out.Command.Parameters.TaskNumber,
			TaskTitle:  out.Command.Parameters.TaskTitle,
			Duration:   out.Command.Parameters.Duration,
		},
		SentAt: time.Now(),
	}
	if out.Task != nil {
		resp.TaskID = out.Task.ID
	}
	return resp
}
