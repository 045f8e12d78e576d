package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"BourseSignal/internal/analyzer"
	"BourseSignal/internal/metrics"
	"BourseSignal/internal/notifier"
	"BourseSignal/internal/recorder"
	"BourseSignal/internal/series"
	"BourseSignal/internal/source"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the recurring analysis over every sheet of the source.
// A sheet's failure is recorded and reported but never stops the run;
// each security is isolated from the others.
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Source   source.Source
	Recorder recorder.Recorder
	Notifier notifier.Notifier
	Metrics  *metrics.Metrics
	Excluded map[string]bool
	Pause    time.Duration
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, an *analyzer.Analyzer, src source.Source,
	rec recorder.Recorder, nt notifier.Notifier, m *metrics.Metrics,
	excluded []string, pause time.Duration) *Scheduler {

	ex := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		ex[name] = true
	}
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: an,
		Source:   src,
		Recorder: rec,
		Notifier: nt,
		Metrics:  m,
		Excluded: ex,
		Pause:    pause,
		Ctx:      ctx,
	}
}

// Register registers the recurring analysis task.
func (s *Scheduler) Register(analyzeCron string) error {
	if _, err := s.Cron.AddFunc(analyzeCron, s.RunAll); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunAll processes every sheet of the source once, pausing between
// sheets to stay inside the sheet service's quota, then records and
// reports the run.
func (s *Scheduler) RunAll() {
	log.Println("[INFO] running analysis over all sheets")
	started := time.Now()

	sheets, err := s.Source.ListSheets()
	if err != nil {
		log.Printf("[ERROR] list sheets: %v", err)
		s.trySend(fmt.Sprintf("❌ Lecture de la liste des feuilles impossible: %v", err))
		return
	}

	var records []*recorder.SheetRecord
	for _, sheet := range sheets {
		if s.Excluded[sheet] {
			log.Printf("[INFO] skipping excluded sheet %s", sheet)
			continue
		}
		if len(records) > 0 && s.Pause > 0 {
			select {
			case <-s.Ctx.Done():
				log.Println("[WARN] run aborted by shutdown")
				return
			case <-time.After(s.Pause):
			}
		}

		rec := s.processSheet(sheet)
		records = append(records, rec)

		if err := s.Recorder.RecordSheet(rec); err != nil {
			log.Printf("[ERROR] record sheet %s: %v", sheet, err)
		}
		s.Metrics.SheetsTotal.WithLabelValues(rec.Status).Inc()
	}

	run := &recorder.RunSummary{
		StartedAt:   started,
		FinishedAt:  time.Now(),
		SheetsTotal: len(records),
	}
	for _, rec := range records {
		if rec.Status == recorder.StatusOK {
			run.SheetsOK++
		} else {
			run.SheetsFailed++
		}
	}
	if err := s.Recorder.RecordRun(run); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	s.Metrics.RunsTotal.Inc()
	s.Metrics.RunDuration.Observe(run.FinishedAt.Sub(run.StartedAt).Seconds())
	s.Metrics.LastRunTimestamp.Set(float64(run.FinishedAt.Unix()))

	s.trySend(notifier.FormatRunReport(run, records))
	log.Printf("[INFO] run finished: %d sheets, %d ok, %d failed",
		run.SheetsTotal, run.SheetsOK, run.SheetsFailed)
}

// processSheet analyzes one sheet, writes the annotated table back, and
// classifies any failure for recording.
func (s *Scheduler) processSheet(sheet string) *recorder.SheetRecord {
	rec := &recorder.SheetRecord{Sheet: sheet}

	res, err := s.Analyzer.Analyze(sheet)
	if err != nil {
		rec.Error = err.Error()
		switch {
		case errors.Is(err, series.ErrNoPriceColumn):
			rec.Status = recorder.StatusSchemaError
		case errors.Is(err, series.ErrInsufficientHistory):
			rec.Status = recorder.StatusInsufficientHistory
		default:
			rec.Status = recorder.StatusReadError
		}
		log.Printf("[ERROR] analyze %s: %v", sheet, err)
		return rec
	}

	rec.RowsTotal = res.RowsTotal
	rec.RowsPriced = res.RowsPriced
	rec.MMDecision = string(res.Latest.MMDecision)
	rec.BolDecision = string(res.Latest.BolDecision)
	rec.MACDDecision = string(res.Latest.MACDDecision)
	rec.RSIDecision = string(res.Latest.RSIDecision)
	rec.StocDecision = string(res.Latest.StocDecision)

	if err := s.Source.WriteTable(sheet, res.Table); err != nil {
		rec.Status = recorder.StatusWriteError
		rec.Error = err.Error()
		log.Printf("[ERROR] write %s: %v", sheet, err)
		return rec
	}

	rec.Status = recorder.StatusOK
	s.countDecisions(res)
	log.Printf("[INFO] sheet %s done: %d/%d rows priced", sheet, res.RowsPriced, res.RowsTotal)
	return rec
}

func (s *Scheduler) countDecisions(res *analyzer.Result) {
	for indicator, decision := range map[string]string{
		"mm":         string(res.Latest.MMDecision),
		"bollinger":  string(res.Latest.BolDecision),
		"macd":       string(res.Latest.MACDDecision),
		"rsi":        string(res.Latest.RSIDecision),
		"stochastic": string(res.Latest.StocDecision),
	} {
		s.Metrics.DecisionsTotal.WithLabelValues(indicator, decision).Inc()
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendReport(s.Ctx, text); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
