package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CountsTowardEarnings reports whether the status contributes to
// statistics and reports. Only completed jobs do.
func (s Status) CountsTowardEarnings() bool {
	return s == StatusCompleted
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Client Type
// ===============================

type ClientType string

const (
	ClientIndividual   ClientType = "individual"
	ClientOrganization ClientType = "organization"
)

func (t ClientType) Valid() bool {
	return t == ClientIndividual || t == ClientOrganization
}
