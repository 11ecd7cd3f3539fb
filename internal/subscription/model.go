package subscription

import "time"

// ProgressEntry tracks completion of one module. Entries are frozen at
// subscribe time: plan edits after that do not re-synchronize them.
type ProgressEntry struct {
	ModuleID  string `json:"moduleId"`
	Completed bool   `json:"completed"`
}

// Subscription is the single user's enrollment. The system holds at most
// one subscription globally; subscribing again replaces it.
type Subscription struct {
	ID           string          `json:"id"`
	PlanID       string          `json:"planId"`
	SubscribedAt time.Time       `json:"subscribedAt"`
	Progress     []ProgressEntry `json:"progress"`
}

type SubscribeRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

type ProgressRequest struct {
	ModuleID  string `json:"moduleId" binding:"required"`
	Completed *bool  `json:"completed" binding:"required"`
}

// Clone returns a deep copy so store-owned state never leaks to callers.
func (s Subscription) Clone() Subscription {
	out := s
	if s.Progress != nil {
		out.Progress = append([]ProgressEntry(nil), s.Progress...)
	}
	return out
}
