package resolve_leave

// ResolveLeaveRequest тело решения по заявке
type ResolveLeaveRequest struct {
	Approve bool `json:"approve"`
}
