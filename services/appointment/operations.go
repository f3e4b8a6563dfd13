package appointment

// UpdateOp is the staff action applied to an existing appointment. Each
// variant carries only the fields its operation needs, and Update dispatches
// over the closed set rather than a free-form action string.
type UpdateOp interface {
	isUpdateOp()
}

// ScheduleOp confirms an appointment, optionally moving it to a new instant.
type ScheduleOp struct {
	PrimaryPhysician string
	Schedule         any // structured or textual instant, normalized on apply
	Note             string
}

// CancelOp cancels an appointment with a stated reason.
type CancelOp struct {
	Reason string
}

func (ScheduleOp) isUpdateOp() {}
func (CancelOp) isUpdateOp()   {}
