package auditlog

import "time"

type EntryResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	IsError   bool      `json:"is_error"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Action:    e.Action,
		Detail:    e.Detail,
		IsError:   e.IsError(),
		CreatedAt: e.CreatedAt,
	}
}
