package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"content-humanizer/humanizer"
	"content-humanizer/models"
	"content-humanizer/store"
)

// ErrUnknownCollection is returned for collection names the operation does not support.
var ErrUnknownCollection = errors.New("unknown collection")

const (
	previewTruncate     = 200
	defaultPreviewLimit = 5
	// below this many characters a document counts as empty when diagnosing
	minContentLength = 10
)

// ReportStore persists JSON run reports and returns where they went.
type ReportStore interface {
	SaveReport(ctx context.Context, key string, body []byte) (string, error)
}

// HumanizeOptions steuern den Bulk-Lauf.
type HumanizeOptions struct {
	Sanitize         bool
	Concurrency      int
	SampleLength     int
	PreviewMinLength int
}

// HumanizeService wendet den Humanizer auf gespeicherten Content an und schreibt nur geänderte Felder zurück.
type HumanizeService struct {
	Store     store.ContentStore
	Engine    *humanizer.Humanizer
	Sanitizer *TextSanitizer
	Reports   ReportStore
	Logger    *zap.Logger
	Options   HumanizeOptions
}

// NewHumanizeService erstellt eine neue Instanz des HumanizeService. reports may be nil.
func NewHumanizeService(st store.ContentStore, engine *humanizer.Humanizer, reports ReportStore, logger *zap.Logger, opts HumanizeOptions) *HumanizeService {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.SampleLength <= 0 {
		opts.SampleLength = 100
	}
	if opts.PreviewMinLength <= 0 {
		opts.PreviewMinLength = 50
	}
	if engine == nil {
		engine = humanizer.New()
	}
	return &HumanizeService{
		Store:     st,
		Engine:    engine,
		Sanitizer: NewTextSanitizer(logger),
		Reports:   reports,
		Logger:    logger,
		Options:   opts,
	}
}

// CollectionSummary zählt die Ergebnisse einer Collection.
type CollectionSummary struct {
	Total   int `json:"total"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// ItemResult beschreibt das Ergebnis für ein Dokument.
type ItemResult struct {
	ID      uint     `json:"id"`
	Name    string   `json:"name"`
	Updated bool     `json:"updated"`
	Fields  []string `json:"fields,omitempty"`
	Sample  string   `json:"sample,omitempty"`
}

// CollectionReport is the outcome of humanizing one collection.
type CollectionReport struct {
	Collection models.Collection `json:"collection"`
	DryRun     bool              `json:"dry_run,omitempty"`
	Summary    CollectionSummary `json:"summary"`
	Results    []ItemResult      `json:"results"`
}

// RunReport is the outcome of a full run across every collection.
type RunReport struct {
	RunID        string                                  `json:"run_id"`
	StartedAt    time.Time                               `json:"started_at"`
	FinishedAt   time.Time                               `json:"finished_at"`
	DryRun       bool                                    `json:"dry_run,omitempty"`
	TotalUpdated int                                     `json:"total_updated"`
	Results      map[models.Collection]CollectionSummary `json:"results"`
	Collections  []CollectionReport                      `json:"-"`
	ReportURL    string                                  `json:"report_url,omitempty"`
}

type documentPlan struct {
	fields  map[string]string
	engines models.EngineSummaryList
	changed []string
}

func (p documentPlan) empty() bool { return len(p.changed) == 0 }

// plan computes the rewrite for one document without persisting anything.
func (s *HumanizeService) plan(c models.Collection, doc models.Document) documentPlan {
	names := models.HumanizableFields(c)
	input := make(map[string]string, len(names))
	for _, name := range names {
		input[name] = s.prepare(doc.Fields[name])
	}

	res := s.Engine.FieldSet(input, names)
	p := documentPlan{fields: res.Updated}
	for _, name := range names {
		if _, ok := p.fields[name]; ok {
			p.changed = append(p.changed, name)
			continue
		}
		// sanitizing alone is still a change worth writing
		if v := input[name]; v != "" && v != doc.Fields[name] {
			p.fields[name] = v
			p.changed = append(p.changed, name)
		}
	}

	if models.HasEngineSummaries(c) && len(doc.EngineSummaries) > 0 {
		prepared := make([]humanizer.EngineSummary, len(doc.EngineSummaries))
		for i, e := range doc.EngineSummaries {
			e.Summary = s.prepare(e.Summary)
			prepared[i] = e
		}
		humanized := s.Engine.EngineSummaries(prepared)
		for i := range humanized {
			if humanized[i].Summary != doc.EngineSummaries[i].Summary {
				p.engines = humanized
				p.changed = append(p.changed, "engine_summaries")
				break
			}
		}
	}
	return p
}

func (s *HumanizeService) prepare(text string) string {
	if !s.Options.Sanitize || text == "" {
		return text
	}
	out, _ := s.Sanitizer.Sanitize(text)
	return out
}

// RunCollection humanizes every document of a collection and persists the
// changed ones. With dryRun nothing is written.
func (s *HumanizeService) RunCollection(ctx context.Context, c models.Collection, dryRun bool) (CollectionReport, error) {
	if _, ok := models.ParseCollection(string(c)); !ok {
		return CollectionReport{}, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}
	log := s.Logger.With(zap.String("collection", string(c)), zap.Bool("dry_run", dryRun))
	log.Info("Starting content humanization")

	docs, err := s.Store.List(ctx, c, 0)
	if err != nil {
		return CollectionReport{}, fmt.Errorf("load %s: %w", c, err)
	}

	report := CollectionReport{
		Collection: c,
		DryRun:     dryRun,
		Summary:    CollectionSummary{Total: len(docs)},
		Results:    make([]ItemResult, 0, len(docs)),
	}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		p := s.plan(c, doc)
		if p.empty() {
			report.Summary.Skipped++
			report.Results = append(report.Results, ItemResult{ID: doc.ID, Name: doc.Name})
			if !dryRun {
				documentsProcessed.WithLabelValues(string(c), "skipped").Inc()
			}
			continue
		}

		if !dryRun {
			if err := s.Store.Update(ctx, c, doc.ID, p.fields, p.engines); err != nil {
				log.Error("Failed to persist humanized document", zap.Uint("id", doc.ID), zap.Error(err))
				return report, fmt.Errorf("update %s/%d: %w", c, doc.ID, err)
			}
			documentsProcessed.WithLabelValues(string(c), "updated").Inc()
			fieldsHumanized.WithLabelValues(string(c)).Add(float64(len(p.changed)))
		}

		report.Summary.Updated++
		report.Results = append(report.Results, ItemResult{
			ID:      doc.ID,
			Name:    doc.Name,
			Updated: true,
			Fields:  p.changed,
			Sample:  s.sample(p),
		})
	}

	log.Info("Content humanization complete",
		zap.Int("total", report.Summary.Total),
		zap.Int("updated", report.Summary.Updated),
		zap.Int("skipped", report.Summary.Skipped))
	return report, nil
}

func (s *HumanizeService) sample(p documentPlan) string {
	for _, name := range p.changed {
		if v, ok := p.fields[name]; ok {
			return truncateRunes(v, s.Options.SampleLength)
		}
	}
	if len(p.engines) > 0 {
		return truncateRunes(p.engines[0].Summary, s.Options.SampleLength)
	}
	return ""
}

// RunAll humanizes all collections with bounded concurrency and uploads the
// run report when a ReportStore is configured.
func (s *HumanizeService) RunAll(ctx context.Context, dryRun bool) (RunReport, error) {
	run := RunReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		DryRun:    dryRun,
		Results:   map[models.Collection]CollectionSummary{},
	}
	log := s.Logger.With(zap.String("run_id", run.RunID))
	log.Info("Starting full content humanization", zap.Int("concurrency", s.Options.Concurrency))

	reports := make([]CollectionReport, len(models.AllCollections))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Options.Concurrency)
	for i, c := range models.AllCollections {
		g.Go(func() error {
			r, err := s.RunCollection(gctx, c, dryRun)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		runsTotal.WithLabelValues("error").Inc()
		log.Error("Full humanization failed", zap.Error(err))
		return run, err
	}

	for _, r := range reports {
		run.Results[r.Collection] = r.Summary
		run.TotalUpdated += r.Summary.Updated
	}
	run.Collections = reports
	run.FinishedAt = time.Now().UTC()
	runsTotal.WithLabelValues("success").Inc()

	if s.Reports != nil {
		url, err := s.saveReport(ctx, run)
		if err != nil {
			log.Warn("Failed to upload humanization report", zap.Error(err))
		} else {
			run.ReportURL = url
		}
	}

	log.Info("Full humanization complete", zap.Int("total_updated", run.TotalUpdated))
	return run, nil
}

func (s *HumanizeService) saveReport(ctx context.Context, run RunReport) (string, error) {
	body, err := json.MarshalIndent(struct {
		RunReport
		Collections []CollectionReport `json:"collections"`
	}{run, run.Collections}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	key := fmt.Sprintf("humanize-reports/%s/%s.json", run.StartedAt.Format("2006-01-02"), run.RunID)
	return s.Reports.SaveReport(ctx, key, body)
}

// Preview is one before/after pair from a dry run.
type Preview struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Field  string `json:"field"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// Preview shows how the first limit documents would change, without saving.
func (s *HumanizeService) Preview(ctx context.Context, c models.Collection, limit int) ([]Preview, error) {
	fields := models.PreviewFields(c)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %q (use brands, models or variants)", ErrUnknownCollection, c)
	}
	if limit <= 0 {
		limit = defaultPreviewLimit
	}

	docs, err := s.Store.List(ctx, c, limit)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c, err)
	}

	previews := []Preview{}
	for _, doc := range docs {
		for _, field := range fields {
			original := doc.Fields[field]
			if utf8.RuneCountInString(original) <= s.Options.PreviewMinLength {
				continue
			}
			after := s.Engine.Content(s.prepare(original))
			if after == original {
				continue
			}
			previews = append(previews, Preview{
				ID:     doc.ID,
				Name:   doc.Name,
				Field:  field,
				Before: truncateRunes(original, previewTruncate),
				After:  truncateRunes(after, previewTruncate),
			})
		}
	}
	return previews, nil
}

// Diagnosis status values.
const (
	StatusEmpty     = "EMPTY"
	StatusCompliant = "COMPLIANT"
	StatusPending   = "PENDING"
)

// Diagnosis explains why a document would or would not be rewritten.
type Diagnosis struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Fields   []string `json:"fields,omitempty"`
	Triggers []string `json:"triggers,omitempty"`
}

// Diagnose classifies every document of a collection as EMPTY, COMPLIANT or
// PENDING. A document is PENDING when a run would rewrite it; Triggers lists
// the table phrases it still contains.
func (s *HumanizeService) Diagnose(ctx context.Context, c models.Collection) ([]Diagnosis, error) {
	if _, ok := models.ParseCollection(string(c)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}
	docs, err := s.Store.List(ctx, c, 0)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c, err)
	}

	out := make([]Diagnosis, 0, len(docs))
	for _, doc := range docs {
		d := Diagnosis{ID: doc.ID, Name: doc.Name, Status: StatusEmpty}
		seen := map[string]bool{}
		for _, field := range models.HumanizableFields(c) {
			text := doc.Fields[field]
			if len(text) > minContentLength {
				d.Status = StatusCompliant
			}
			for _, tr := range s.Engine.Triggers(text) {
				seen[tr] = true
			}
		}
		for _, e := range doc.EngineSummaries {
			for _, tr := range s.Engine.Triggers(e.Summary) {
				seen[tr] = true
			}
		}
		if d.Status == StatusEmpty {
			out = append(out, d)
			continue
		}
		// same decision RunCollection makes, so tone-only changes count too
		if p := s.plan(c, doc); !p.empty() {
			d.Status = StatusPending
			d.Fields = p.changed
			for tr := range seen {
				d.Triggers = append(d.Triggers, tr)
			}
			sort.Strings(d.Triggers)
		}
		out = append(out, d)
	}
	return out, nil
}

// CountByStatus tallies diagnoses per status.
func CountByStatus(diags []Diagnosis) map[string]int {
	counts := map[string]int{StatusEmpty: 0, StatusCompliant: 0, StatusPending: 0}
	for _, d := range diags {
		counts[d.Status]++
	}
	return counts
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
