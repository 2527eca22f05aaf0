package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/moneytrack/moneytrack/internal/client/models"
)

// Add interactively records one expense or income entry.
func (a *App) Add(ctx context.Context) error {
	txType, err := getSimpleText(a.reader, "Type (expense/income)", a.out)
	if err != nil {
		return err
	}
	if txType == "" {
		txType = models.TypeExpense
	}

	tag, err := getSimpleText(a.reader, "Tag", a.out)
	if err != nil {
		return err
	}

	amountText, err := getSimpleText(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		a.showError(fmt.Sprintf("invalid amount: %s", amountText))
		return nil
	}

	description, err := getRawLine(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	tx := models.NewTransaction{
		Type:        txType,
		Tag:         tag,
		Amount:      amount,
		Description: description,
	}
	if err := a.trackerService.AddTransaction(ctx, tx); err != nil {
		a.showError(err.Error())
		return nil
	}

	fmt.Fprintln(a.out, "Recorded.")
	return nil
}
