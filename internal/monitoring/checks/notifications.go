package checks

import (
	"context"
	"fmt"

	"github.com/charlesng35/marketadmin/internal/monitoring"
)

// SubscriberCounter reports connected notification subscribers.
type SubscriberCounter interface {
	Subscribers() int
}

// Notifications returns a liveness probe describing the notification hub. A missing hub
// means broadcasting is disabled, which degrades rather than fails the service.
func Notifications(hub SubscriberCounter) monitoring.Check {
	return monitoring.NewCheck("notifications", func(context.Context) monitoring.ProbeResult {
		if hub == nil {
			return monitoring.ProbeResult{Status: monitoring.StatusDegraded, Details: "broadcasting disabled"}
		}
		return monitoring.ProbeResult{
			Status:  monitoring.StatusUp,
			Details: fmt.Sprintf("%d subscribers", hub.Subscribers()),
		}
	})
}
