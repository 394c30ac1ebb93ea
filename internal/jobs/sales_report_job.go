package jobs

import (
	"context"
	"log/slog"

	"caisse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// closingTimeSchedule fires once per day at 23:00, when the floor closes.
const closingTimeSchedule = "0 0 23 * * *"

// SalesReportJob renders the daily sales report at closing time and writes
// it to the log, so a day's figures survive even when nobody asked for the
// report over the API.
type SalesReportJob struct {
	handler queries.GetSalesReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSalesReportJob creates the closing-time report job.
func NewSalesReportJob(handler queries.GetSalesReportQueryHandler, logger *slog.Logger) *SalesReportJob {
	return &SalesReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "sales_report_job"),
	}
}

// Start schedules the job at closing time.
func (j *SalesReportJob) Start() error {
	_, err := j.cron.AddFunc(closingTimeSchedule, func() {
		ctx := context.Background()

		report, err := j.handler.Handle(ctx, queries.NewGetSalesReportQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Sales report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Daily sales report",
			"paid_orders", report.Stats.PaidCount,
			"pending_orders", report.Stats.PendingCount,
			"revenue", report.Stats.Revenue.String(),
			"report", report.Report,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sales report job started (running at closing time)")
	return nil
}

// Stop stops the sales report job.
func (j *SalesReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Sales report job stopped")
}
