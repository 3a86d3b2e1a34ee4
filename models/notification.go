package models

// SMSPayload is the task payload enqueued for the background SMS worker when a
// booking is confirmed. It carries a snapshot of the booking so the worker
// never has to read the store.
type SMSPayload struct {
	Booking Booking `json:"booking"`
}
