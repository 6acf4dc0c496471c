package leave

// Tata letak kolom tab "Leave Approvals".
// Kunci komposit: (employee, applied_date).
const (
	colCreatedAt   = "A"
	colEmployee    = "B"
	colLeaveType   = "C"
	colDuration    = "D"
	colAppliedDate = "E"
	colStatus      = "F"
	colReason      = "G"
)

const firstDataRow = 2

// DateLayout adalah format dd-mm-yyyy untuk applied_date.
const DateLayout = "02-01-2006"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Record struct {
	Row         int
	Employee    string
	LeaveType   string
	Duration    string
	AppliedDate string
	Status      string
	Reason      string
}
