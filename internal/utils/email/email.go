package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/KarimF430/Assad-motors-sub000/internal/config"
	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/KarimF430/Assad-motors-sub000/internal/utils"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg     *config.Config
	logger  *logrus.Logger
	deliver func(e *email.Email) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	s := &Sender{
		cfg:    cfg,
		logger: logger,
	}
	s.deliver = s.smtpDeliver
	return s
}

func (s *Sender) smtpDeliver(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	return e.Send(addr, auth)
}

// ComposeQuote builds the quote email without sending it
func (s *Sender) ComposeQuote(to, name string, q models.EMIQuote) *email.Email {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Your car loan EMI quote: %s/month", utils.FormatINR(q.MonthlyEMI))

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	fmt.Fprintf(&b, "Here is the EMI estimate you requested (quote %s).\n\n", q.ID)
	fmt.Fprintf(&b, "Ex-showroom price: %s\n", utils.FormatINR(q.ExShowroom))
	fmt.Fprintf(&b, "Down payment:      %s\n", utils.FormatINR(q.DownPayment))
	fmt.Fprintf(&b, "Loan amount:       %s\n", utils.FormatINR(q.Terms.Principal))
	fmt.Fprintf(&b, "Interest rate:     %.2f%% p.a.\n", q.Terms.AnnualRatePercent)
	fmt.Fprintf(&b, "Tenure:            %d months\n\n", q.Terms.TenureMonths)
	fmt.Fprintf(&b, "Monthly EMI:       %s\n", utils.FormatINR(q.MonthlyEMI))
	fmt.Fprintf(&b, "Total interest:    %s\n", utils.FormatINR(q.TotalInterest))
	fmt.Fprintf(&b, "Total payable:     %s\n\n", utils.FormatINR(q.TotalPayable))

	if len(q.Schedule) > 0 {
		b.WriteString("Repayment schedule\n")
		b.WriteString("Month   Principal paid   Interest paid   Balance\n")
		for _, row := range q.Schedule {
			fmt.Fprintf(&b, "%-7d %-16s %-15s %s\n",
				row.MonthsElapsed,
				utils.FormatINR(row.CumulativePrincipalPaid),
				utils.FormatINR(row.CumulativeInterestPaid),
				utils.FormatINR(row.RemainingBalance))
		}
		b.WriteString("\n")
	}

	b.WriteString("Figures are indicative; the lender's sanction letter is final.\n")
	b.WriteString("\nBest regards,\nAssad Motors")
	e.Text = []byte(b.String())
	return e
}

// SendQuote mails an EMI quote to a lead
func (s *Sender) SendQuote(to, name string, q models.EMIQuote) error {
	e := s.ComposeQuote(to, name, q)

	if err := s.deliver(e); err != nil {
		s.logger.Errorf("Failed to send quote %s to %s: %v", q.ID, to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
