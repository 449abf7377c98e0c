package notify

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"time"

	shoutrrr "github.com/nicholas-fedor/shoutrrr"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"
	"go.uber.org/zap"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/errs"
	"liyu1981.xyz/battery-tracking-service/pkg/models"
)

// Sender is the part of shoutrrr's router that the notifier uses.
type Sender interface {
	Send(message string, params *stypes.Params) []error
}

type SenderFactory func(rawURL string) (Sender, error)

func shoutrrrSender(rawURL string) (Sender, error) {
	sender, err := shoutrrr.CreateSender(rawURL)
	if err != nil {
		return nil, err
	}
	sender.Timeout = 10 * time.Second
	sender.SetLogger(log.New(io.Discard, "", 0))
	return sender, nil
}

// Result says who a report went to and whether it actually left the process.
type Result struct {
	Recipients []string `json:"recipients"`
	Simulated  bool     `json:"simulated"`
}

type Notifier struct {
	URL       string
	NewSender SenderFactory
	logger    *zap.Logger
}

// New returns a notifier for a shoutrrr URL. An empty URL only logs the
// report.
func New(rawURL string) *Notifier {
	return &Notifier{
		URL:       strings.TrimSpace(rawURL),
		NewSender: shoutrrrSender,
		logger:    common.GetLoggerWith(common.LoggerNameNotifier),
	}
}

// withRecipients puts the stakeholder emails on smtp URLs. Other services
// have a fixed destination in their URL.
func withRecipients(rawURL string, recipients []string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("notify url: %w", err)
	}
	if u.Scheme != "smtp" {
		return rawURL, nil
	}
	q := u.Query()
	q.Set("toaddresses", strings.Join(recipients, ","))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (n *Notifier) SendReport(stakeholders []models.Stakeholder, subject, body string) (*Result, error) {
	if len(stakeholders) == 0 {
		return nil, errs.Validation("stakeholders", "no stakeholders to notify")
	}

	recipients := common.Mapper(stakeholders, func(s models.Stakeholder) string { return s.Email })
	result := &Result{Recipients: recipients, Simulated: n.URL == ""}

	n.logger.Info("Received report", zap.String("subject", subject), zap.Strings("recipients", recipients))

	if result.Simulated {
		n.logger.Info("Report delivery simulated",
			zap.String("subject", subject), zap.Strings("recipients", recipients), zap.String("body", body))
		return result, nil
	}

	target, err := withRecipients(n.URL, recipients)
	if err != nil {
		return nil, err
	}
	sender, err := n.NewSender(target)
	if err != nil {
		return nil, fmt.Errorf("create notify sender: %w", err)
	}

	params := stypes.Params{}
	params.SetTitle(subject)
	if sendErr := errors.Join(sender.Send(body, &params)...); sendErr != nil {
		n.logger.Error("Report delivery failed", zap.String("subject", subject), zap.Error(sendErr))
		return nil, sendErr
	}

	n.logger.Info("Report sent", zap.String("subject", subject), zap.Strings("recipients", recipients))
	return result, nil
}
