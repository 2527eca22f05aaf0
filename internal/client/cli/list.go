package cli

import (
	"context"
	"fmt"

	"github.com/moneytrack/moneytrack/internal/client/models"
)

// List fetches the filtered transaction report and renders it. Empty answers
// keep the backend defaults (Today / expense).
func (a *App) List(ctx context.Context) error {
	dateRange, err := getSimpleText(a.reader, "Date range (Today/Yesterday/Last 7 Days/Last 30 Days, empty for Today)", a.out)
	if err != nil {
		return err
	}
	txType, err := getSimpleText(a.reader, "Type (expense/income, empty for expense)", a.out)
	if err != nil {
		return err
	}
	tag, err := getSimpleText(a.reader, "Tag (empty for all)", a.out)
	if err != nil {
		return err
	}

	report, err := a.trackerService.Report(ctx, models.TransactionFilter{
		DateRange: dateRange,
		Type:      txType,
		Tag:       tag,
	})
	if err != nil {
		a.showError(err.Error())
		return nil
	}

	a.renderReport(report)
	return nil
}

func (a *App) renderReport(r models.Report) {
	fmt.Fprintf(a.out, "Totals: day %.2f | month %.2f | year %.2f\n",
		r.Summary.Day, r.Summary.Month, r.Summary.Year)

	if len(r.Items) == 0 {
		fmt.Fprintln(a.out, "No transactions.")
	}
	for _, item := range r.Items {
		fmt.Fprintf(a.out, "  #%d  %-15s %10.2f\n", item.ID, item.Tag, item.Amount)
	}

	fmt.Fprintf(a.out, "Balance %.2f (gain %.2f, loss %.2f) for %s\n",
		r.Side.Balance, r.Side.Gain, r.Side.Loss, r.Side.DateRange)
}
