package casefile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/comptoir/backend/internal/domain/casefile"
	"github.com/comptoir/backend/internal/infrastructure/export"
	"github.com/comptoir/backend/internal/infrastructure/printing"
)

// ReportTitle heads the generated case-notes report.
const ReportTitle = "Procès-verbal – Notes d'enquête"

// Service handles the case-notes module: the log itself, import/export
// and the PDF report.
type Service struct {
	repo     casefile.CaseRepository
	renderer printing.PDFRenderer
	now      func() time.Time
}

// NewService creates a casefile Service
func NewService(repo casefile.CaseRepository, renderer printing.PDFRenderer) *Service {
	return &Service{
		repo:     repo,
		renderer: renderer,
		now:      time.Now,
	}
}

// Cases lists the logged case notes
func (s *Service) Cases(ctx context.Context) []CaseResponse {
	cases := s.repo.List(ctx)
	out := make([]CaseResponse, 0, len(cases))
	for _, c := range cases {
		out = append(out, CaseResponse{ID: c.ID, Title: c.Title, Note: c.Note})
	}
	return out
}

// AddCase appends a new case note to the log
func (s *Service) AddCase(ctx context.Context, req CreateCaseRequest) (*CaseResponse, error) {
	c, err := casefile.NewCase(strings.TrimSpace(req.Title), strings.TrimSpace(req.Note))
	if err != nil {
		return nil, err
	}

	cases := s.repo.List(ctx)
	cases = append(cases, *c)
	s.repo.Replace(ctx, cases)

	return &CaseResponse{ID: c.ID, Title: c.Title, Note: c.Note}, nil
}

// RemoveCase deletes a case note. Removing an absent case is a no-op.
func (s *Service) RemoveCase(ctx context.Context, id string) {
	cases := s.repo.List(ctx)
	cases.Remove(id)
	s.repo.Replace(ctx, cases)
}

// Import replaces the log wholesale with a JSON array payload. A payload
// that is not a JSON array leaves the log unchanged.
func (s *Service) Import(ctx context.Context, raw []byte) (int, error) {
	cases, err := export.DecodeArray[casefile.Case](raw)
	if err != nil {
		return 0, err
	}
	s.repo.Replace(ctx, cases)
	return len(cases), nil
}

// ExportCSV renders the log as delimited text
func (s *Service) ExportCSV(ctx context.Context) string {
	cases := s.repo.List(ctx)
	rows := make([]export.Row, 0, len(cases))
	for _, c := range cases {
		rows = append(rows, export.Row{
			{Name: "id", Value: c.ID},
			{Name: "title", Value: c.Title},
			{Name: "note", Value: c.Note},
		})
	}
	return export.Encode(rows)
}

// ReportLines lays the log out as the lines of the printed report: a
// header with the export timestamp, then one numbered entry per case
// with its note indented underneath.
func (s *Service) ReportLines(ctx context.Context) []string {
	cases := s.repo.List(ctx)
	lines := []string{
		ReportTitle,
		"Export: " + s.now().Format("02/01/2006 15:04:05"),
		"",
	}
	for i, c := range cases {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, c.Title))
		if c.Note != "" {
			for _, noteLine := range strings.Split(c.Note, "\n") {
				lines = append(lines, "   "+noteLine)
			}
		}
	}
	return lines
}

// ReportPDF paginates the report lines and renders them to PDF
func (s *Service) ReportPDF(ctx context.Context) ([]byte, error) {
	pages := printing.ReportPaginator().Paginate(s.ReportLines(ctx))
	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:  printing.DocumentHTML(ReportTitle, pages),
		Title: ReportTitle,
	})
	if err != nil {
		return nil, err
	}
	return result.PDFData, nil
}
