package models

// AgentResponse is what the voice client reads back to the caller. Success is
// true only when a booking record was actually created; every clarification,
// rejection, or server-error path carries success=false with a spoken prompt.
type AgentResponse struct {
	Success       bool     `json:"success"`
	AgentResponse string   `json:"agentResponse"`
	Booking       *Booking `json:"booking,omitempty"`
}
