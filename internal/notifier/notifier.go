package notifier

import "context"

// LeaveStatusNotification berisi data email keputusan cuti.
type LeaveStatusNotification struct {
	To           string
	EmployeeName string
	LeaveType    string
	Duration     string
	Status       string
}

// Notifier mengirim notifikasi keluar. Pengiriman bersifat best-effort:
// caller mencatat kegagalan tapi tidak pernah menggagalkan request HTTP.
type Notifier interface {
	SendLeaveStatus(ctx context.Context, n LeaveStatusNotification) error
}

// Nop dipakai saat SMTP tidak dikonfigurasi.
type Nop struct{}

func (Nop) SendLeaveStatus(ctx context.Context, n LeaveStatusNotification) error {
	return nil
}
