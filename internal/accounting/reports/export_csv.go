package reports

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/meridian-erp/meridian-erp/internal/accounting/shared"
	"github.com/meridian-erp/meridian-erp/internal/platform/httpx"
)

func amount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func writeCSV(w http.ResponseWriter, filename string, rows [][]string) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	writer := csv.NewWriter(w)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (h *Handler) ExportTrialBalanceCSV(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	tb, err := h.buildTrialBalance(r.Context(), asOf)
	if err != nil {
		shared.RespondError(w, h.logger, "export trial balance", err)
		return
	}
	rows := [][]string{{"Code", "Name", "Type", "Debit", "Credit"}}
	for _, row := range tb.Rows {
		rows = append(rows, []string{row.AccountCode, row.AccountName, string(row.AccountType), amount(row.Debit), amount(row.Credit)})
	}
	rows = append(rows, []string{"", "TOTAL", "", amount(tb.TotalDebit), amount(tb.TotalCredit)})
	if err := writeCSV(w, "trial_balance.csv", rows); err != nil {
		h.logger.Error("write trial balance csv", slog.Any("error", err))
	}
}

func (h *Handler) ExportBalanceSheetCSV(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	bs, err := h.buildBalanceSheet(r.Context(), asOf)
	if err != nil {
		shared.RespondError(w, h.logger, "export balance sheet", err)
		return
	}
	rows := [][]string{{"Section", "Code", "Name", "Balance"}}
	appendSection := func(label string, section BalanceSheetSection) {
		for _, item := range section.Accounts {
			rows = append(rows, []string{label, item.AccountCode, item.AccountName, amount(item.Balance)})
		}
		rows = append(rows, []string{label, "", "TOTAL", amount(section.Total)})
	}
	appendSection("Assets", bs.Assets)
	appendSection("Liabilities", bs.Liabilities)
	appendSection("Equity", bs.Equity)
	rows = append(rows, []string{"", "", "TOTAL LIABILITIES AND EQUITY", amount(bs.TotalLiabilitiesAndEquity)})
	if err := writeCSV(w, "balance_sheet.csv", rows); err != nil {
		h.logger.Error("write balance sheet csv", slog.Any("error", err))
	}
}

func (h *Handler) ExportIncomeStatementCSV(w http.ResponseWriter, r *http.Request) {
	start, end, err := h.period(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	is, err := h.buildIncomeStatement(r.Context(), start, end)
	if err != nil {
		shared.RespondError(w, h.logger, "export income statement", err)
		return
	}
	rows := [][]string{{"Section", "Code", "Name", "Amount"}}
	appendSection := func(label string, section IncomeStatementSection) {
		for _, line := range section.Accounts {
			rows = append(rows, []string{label, line.AccountCode, line.AccountName, amount(line.Amount)})
		}
		rows = append(rows, []string{label, "", "TOTAL", amount(section.Total)})
	}
	appendSection("Revenue", is.Revenue)
	appendSection("Cost of Service", is.CostOfService)
	appendSection("Expenses", is.Expenses)
	rows = append(rows,
		[]string{"", "", "GROSS PROFIT", amount(is.GrossProfit)},
		[]string{"", "", "NET PROFIT", amount(is.NetProfit)},
	)
	if err := writeCSV(w, "income_statement.csv", rows); err != nil {
		h.logger.Error("write income statement csv", slog.Any("error", err))
	}
}
