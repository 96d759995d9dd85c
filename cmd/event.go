package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/sangamhr/kyc-portal/internal/core/events"
	"github.com/sangamhr/kyc-portal/pkg/logger"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Event management commands",
	Long:  `Publish test events to the in-process event bus for debugging handlers`,
}

var publishEventCmd = &cobra.Command{
	Use:   "publish [employee-code]",
	Short: "Publish a test submission event",
	Long:  `Publish a synthetic kyc.submitted event and run the audit handlers against it`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		publishTestEvent(args[0])
	},
}

func publishTestEvent(employeeCode string) {
	log := logger.L()

	eventBus := events.NewEventBus(log)
	registerAuditHandlers(eventBus, log)

	event := events.NewKYCSubmittedEvent(employeeCode, 0, time.Now())
	fmt.Printf("publishing %s for %s\n", event.EventType(), employeeCode)

	eventBus.Publish(context.Background(), event)

	// handlers run async; give them a moment before the process exits
	time.Sleep(500 * time.Millisecond)
}

func init() {
	eventCmd.AddCommand(publishEventCmd)
}
