package notifier

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPNotifier mengirim email lewat server SMTP biasa (gomail).
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func NewSMTPNotifier(cfg SMTPConfig, logger ...*zap.Logger) *SMTPNotifier {
	l := zap.L().Named("notifier.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notifier.smtp")
	}
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: l,
	}
}

func (s *SMTPNotifier) SendLeaveStatus(ctx context.Context, n LeaveStatusNotification) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", fmt.Sprintf("Leave Request %s", n.Status))
	m.SetBody("text/plain", leaveStatusBody(n))

	// gomail tidak menerima context; deadline ditangani oleh dialer timeout bawaan
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send leave status email to %s: %w", n.To, err)
	}

	s.logger.Info("leave status email sent",
		zap.String("to", n.To),
		zap.String("status", n.Status),
	)
	return nil
}

func leaveStatusBody(n LeaveStatusNotification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", n.EmployeeName)
	fmt.Fprintf(&b, "Your %s leave request (%s) has been %s.\n\n", n.LeaveType, n.Duration, strings.ToLower(n.Status))
	b.WriteString("Regards,\nHR Team\n")
	return b.String()
}
