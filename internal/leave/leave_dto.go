package leave

type CreateLeaveRequest struct {
	Employee    string `json:"employee" binding:"required,email"`
	LeaveType   string `json:"leave_type" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
	AppliedDate string `json:"applied_date"`
	Reason      string `json:"reason"`
	Status      string `json:"status" binding:"omitempty,oneof=Pending Approved Rejected"`
}

type DecideLeaveRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Rejected"`
}

type LeaveResponse struct {
	Row         int    `json:"row"`
	Employee    string `json:"employee"`
	LeaveType   string `json:"leave_type"`
	Duration    string `json:"duration"`
	AppliedDate string `json:"applied_date"`
	Status      string `json:"status"`
	Reason      string `json:"reason,omitempty"`
}

type CreateLeaveResponse struct {
	Row    int    `json:"row"`
	Status string `json:"status"`
}

// Notified membedakan sukses penuh dari sukses parsial: status sudah
// committed tapi email notifikasi gagal terkirim.
type DecideLeaveResponse struct {
	Row      int    `json:"row"`
	Status   string `json:"status"`
	Notified bool   `json:"notified"`
}
