package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DB1132/Odoo-hackathon/internal/models"
)

// LeaveNotifier mails the owner of a leave request once it is decided.
type LeaveNotifier struct {
	Cfg  Config
	send func(cfg Config, msg Message) error
}

func NewLeaveNotifier(cfg Config) *LeaveNotifier {
	return &LeaveNotifier{Cfg: cfg, send: Send}
}

func (n *LeaveNotifier) NotifyLeaveDecision(ctx context.Context, to string, request models.LeaveRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return n.send(n.Cfg, leaveDecisionMessage(to, request))
}

func leaveDecisionMessage(to string, request models.LeaveRequest) Message {
	lines := []string{
		"Leave type: " + request.LeaveType,
		"From: " + request.StartDate.Format(models.DayLayout),
		"To: " + request.EndDate.Format(models.DayLayout),
		"Decision: " + request.Status,
	}
	if request.ReviewComments != "" {
		lines = append(lines, "Comments: "+request.ReviewComments)
	}

	msg := Message{
		To:      to,
		Subject: fmt.Sprintf("Your %s leave request was %s", request.LeaveType, strings.ToLower(request.Status)),
		Body:    strings.Join(lines, "\n"),
	}
	// stamp the mail with the decision time rather than the send time
	if request.ReviewedAt != nil {
		msg.Date = *request.ReviewedAt
	} else {
		msg.Date = time.Now()
	}
	return msg
}
