package service

// Broadcaster pushes events to connected dashboard clients (avoids import cycle)
type Broadcaster interface {
	BroadcastToDashboard(msgType string, payload interface{})
}
