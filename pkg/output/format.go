// Package output provides utilities for formatting and displaying projection results.
package output

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/edufin/proforma/internal/projection"
	"github.com/edufin/proforma/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []projection.ScenarioResult) {
	p := message.NewPrinter(language.English)
	for _, result := range results {
		fmt.Printf("--- Results for scenario %s (run %s) ---\n", result.Name, result.RunID)
		fmt.Printf("Year | Type       | Revenue          | EBITDA           | Net Income       | Cash             | Debt             | OK\n")
		fmt.Printf("____ | __________ | ________________ | ________________ | ________________ | ________________ | ________________ | __\n")
		for _, period := range result.Periods {
			ok := "Y"
			if !period.BalanceSheetBalanced || !period.CashFlowReconciled {
				ok = "N"
			}
			// The year is written outside the localized printer so it does
			// not pick up digit grouping.
			_, _ = p.Printf("%s | %-10s | %16.2f | %16.2f | %16.2f | %16.2f | %16.2f | %s\n",
				strconv.Itoa(period.Year),
				period.PeriodType.String(),
				period.ProfitLoss.TotalRevenue.InexactFloat64(),
				period.ProfitLoss.EBITDA.InexactFloat64(),
				period.ProfitLoss.NetIncome.InexactFloat64(),
				period.BalanceSheet.Cash.InexactFloat64(),
				period.BalanceSheet.DebtBalance.InexactFloat64(),
				ok,
			)
		}
		fmt.Printf("NPV of free cash flow: %s\n", format.Currency(result.NPV))
		if result.IRRConverged {
			fmt.Printf("IRR of free cash flow: %s\n", result.IRR.StringFixed(4))
		} else {
			fmt.Printf("IRR of free cash flow: n/a\n")
		}
		for _, event := range result.Diagnostics {
			fmt.Printf("  %s\n", event)
		}
		if len(results) > 1 {
			fmt.Printf("\n")
		}
	}
}

// csvEscape doubles embedded quotes so free-form text is safe inside a
// quoted CSV field.
func csvEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []projection.ScenarioResult) {
	fmt.Printf(`"scenario","year","periodType","tuitionRevenue","otherRevenue","totalRevenue","ebitda","depreciation","netInterest","zakat","netIncome","cash","grossPPE","netPPE","debt","totalEquity","operatingCashFlow","investingCashFlow","financingCashFlow","endingCash","balanced","reconciled"`)
	fmt.Printf("\n")
	for _, result := range results {
		for _, period := range result.Periods {
			fmt.Printf(`"%s","%d","%s","%s","%s","%s","%s","%s","%s","%s","%s","%s","%s","%s","%s","%s","%s","%s","%s","%s","%t","%t"`,
				csvEscape(result.Name),
				period.Year,
				period.PeriodType,
				period.ProfitLoss.TuitionRevenue.StringFixed(2),
				period.ProfitLoss.OtherRevenue.StringFixed(2),
				period.ProfitLoss.TotalRevenue.StringFixed(2),
				period.ProfitLoss.EBITDA.StringFixed(2),
				period.ProfitLoss.Depreciation.StringFixed(2),
				period.ProfitLoss.NetInterest.StringFixed(2),
				period.ProfitLoss.ZakatExpense.StringFixed(2),
				period.ProfitLoss.NetIncome.StringFixed(2),
				period.BalanceSheet.Cash.StringFixed(2),
				period.BalanceSheet.GrossPPE.StringFixed(2),
				period.BalanceSheet.PropertyPlantEquipment.StringFixed(2),
				period.BalanceSheet.DebtBalance.StringFixed(2),
				period.BalanceSheet.TotalEquity.StringFixed(2),
				period.CashFlow.OperatingCashFlow.StringFixed(2),
				period.CashFlow.InvestingCashFlow.StringFixed(2),
				period.CashFlow.FinancingCashFlow.StringFixed(2),
				period.CashFlow.EndingCash.StringFixed(2),
				period.BalanceSheetBalanced,
				period.CashFlowReconciled,
			)
			fmt.Printf("\n")
		}
	}
}
