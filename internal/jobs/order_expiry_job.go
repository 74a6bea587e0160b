package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpiryJob cancels pending orders whose payment window has elapsed.
// Runs every minute; each sweep cancels through the lifecycle rules so the
// transitions are published like any other cancellation.
type OrderExpiryJob struct {
	handler       commands.ExpirePendingOrdersCommandHandler
	paymentWindow time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewOrderExpiryJob creates a new job for expiring unpaid orders.
// The payment window is how long a pending order may wait for payment before
// it is cancelled.
func NewOrderExpiryJob(
	handler commands.ExpirePendingOrdersCommandHandler,
	paymentWindow time.Duration,
	logger *slog.Logger,
) *OrderExpiryJob {
	return &OrderExpiryJob{
		handler:       handler,
		paymentWindow: paymentWindow,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "order_expiry_job"),
	}
}

// Start begins the order expiry job to run every minute.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpirePendingOrdersCommand(j.paymentWindow)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order expiry job misconfigured", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order expiry job failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired unpaid orders", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started (running every minute)")
	return nil
}

// Stop stops the order expiry job.
func (j *OrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}
