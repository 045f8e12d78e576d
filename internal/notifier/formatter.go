package notifier

import (
	"fmt"
	"strings"
	"time"

	"BourseSignal/internal/recorder"
)

// FormatRunReport formats a full run over all sheets into a Telegram message.
// Successful sheets show the latest row's five decisions; failed sheets show
// their classified cause.
func FormatRunReport(run *recorder.RunSummary, sheets []*recorder.SheetRecord) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>BourseSignal — Analyse technique</b> | %s\n\n",
		run.StartedAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Feuilles traitées: %d (✓ %d / ✗ %d)\n\n",
		run.SheetsTotal, run.SheetsOK, run.SheetsFailed))

	for _, s := range sheets {
		if s.Status == recorder.StatusOK {
			b.WriteString(fmt.Sprintf("<b>%s</b> (%d lignes)\n", s.Sheet, s.RowsPriced))
			b.WriteString(fmt.Sprintf("  MM: %s | Bollinger: %s | MACD: %s\n",
				s.MMDecision, s.BolDecision, s.MACDDecision))
			b.WriteString(fmt.Sprintf("  RSI: %s | Stochastique: %s\n",
				s.RSIDecision, s.StocDecision))
		} else {
			b.WriteString(fmt.Sprintf("<b>%s</b> ✗ %s\n", s.Sheet, statusLabel(s.Status)))
		}
	}

	b.WriteString(fmt.Sprintf("\nDurée: %s", run.FinishedAt.Sub(run.StartedAt).Round(time.Second)))
	return b.String()
}

func statusLabel(status string) string {
	switch status {
	case recorder.StatusSchemaError:
		return "colonne de cours introuvable"
	case recorder.StatusInsufficientHistory:
		return "historique insuffisant (< 50 lignes)"
	case recorder.StatusReadError:
		return "lecture impossible"
	case recorder.StatusWriteError:
		return "écriture impossible"
	default:
		return status
	}
}
