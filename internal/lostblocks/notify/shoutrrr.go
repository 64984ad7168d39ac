// Package notify pushes the outcome of a run to shoutrrr services.
package notify

import (
	"fmt"
	"strings"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/types"
	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
	"go.uber.org/zap"
)

// Sender delivers a message to one or more services.
type Sender interface {
	Send(message string, params *types.Params) []error
}

// ShoutrrrNotifier fans a message out to every configured shoutrrr service.
type ShoutrrrNotifier struct {
	senders []Sender
	logger  *zap.Logger
}

// NewShoutrrrNotifier builds a sender per url. Invalid urls are logged and skipped.
func NewShoutrrrNotifier(urls []string, logger *zap.Logger) *ShoutrrrNotifier {
	var senders []Sender
	for _, url := range urls {
		sender, err := shoutrrr.CreateSender(url)
		if err != nil {
			logger.Warn("failed to create shoutrrr sender", zap.String("service", scheme(url)), zap.Error(err))
			continue
		}
		senders = append(senders, sender)
	}

	return &ShoutrrrNotifier{senders: senders, logger: logger}
}

// Enabled reports whether any sender is configured.
func (n *ShoutrrrNotifier) Enabled() bool {
	return len(n.senders) > 0
}

// NotifyReport sends a one line summary of report.
func (n *ShoutrrrNotifier) NotifyReport(report model.Report) {
	n.Send(Message(report))
}

// Send delivers message to every sender. Delivery failures are logged, not returned.
func (n *ShoutrrrNotifier) Send(message string) {
	for _, sender := range n.senders {
		for _, err := range sender.Send(message, nil) {
			if err != nil {
				n.logger.Warn("failed to send shoutrrr notification", zap.Error(err))
			}
		}
	}
}

// Message renders the summary line for a report.
func Message(report model.Report) string {
	network := report.Network
	if network == "" {
		network = "jormungandr"
	}
	return fmt.Sprintf("%s: %d lost of %d leader slots (won %d, tip %s)",
		network, report.Lost(), report.Opportunities, report.Wins, report.Tip)
}

// scheme keeps credentials embedded in service urls out of the logs.
func scheme(url string) string {
	if s, _, ok := strings.Cut(url, "://"); ok {
		return s
	}
	return "invalid"
}
