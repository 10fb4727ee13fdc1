package constancias

import (
	"context"
	"encoding/json"
	"time"

	"constancias-backend/internal/folio"
	"constancias-backend/internal/models"
	"constancias-backend/internal/render"
	"constancias-backend/internal/storage"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultBulkDelay = 100 * time.Millisecond

// NuevaConstancia is the validated input for one issuance. JSON names match
// the bulk-upload row shape.
type NuevaConstancia struct {
	FullName      string `json:"nombre_completo"`
	Course        string `json:"curso"`
	DurationHours int    `json:"duracion_horas"`
	Date          string `json:"fecha"`
	Grade         string `json:"calificacion,omitempty"`
	Notes         string `json:"observaciones,omitempty"`
}

// PDFRenderer abstracts the certificate renderer (for test doubles).
type PDFRenderer interface {
	Render(data render.Data, baseURL string) ([]byte, error)
}

// Service orchestrates issuance: allocate folio, render PDF, upload artifact,
// insert record. Stateless and reentrant; all durable state lives in the
// allocator's counter and the repository.
type Service struct {
	DB        *gorm.DB
	Repo      *Repository
	Folios    *folio.Allocator
	Renderer  PDFRenderer
	Store     storage.ObjectStore
	BulkDelay time.Duration
}

// Create issues one constancia. Render and upload failures abort with nothing
// persisted. An insert failure triggers a best-effort delete of the uploaded
// artifact: an orphaned artifact is acceptable, an orphaned visible record is
// not, so the cleanup's own failure is only logged.
func (s *Service) Create(ctx context.Context, input NuevaConstancia, baseURL string) (*models.Constancia, error) {
	f := s.Folios.Allocate(ctx)

	pdfBytes, err := s.Renderer.Render(render.Data{
		Folio:         f,
		FullName:      input.FullName,
		Course:        input.Course,
		DurationHours: input.DurationHours,
		Date:          input.Date,
		Grade:         input.Grade,
		Notes:         input.Notes,
	}, baseURL)
	if err != nil {
		return nil, err
	}

	key := f + ".pdf"
	pdfURL, err := s.Store.Upload(ctx, key, pdfBytes, "application/pdf")
	if err != nil {
		return nil, err
	}

	rec := &models.Constancia{
		Folio:         f,
		FullName:      input.FullName,
		Course:        input.Course,
		DurationHours: input.DurationHours,
		Date:          input.Date,
		Grade:         optional(input.Grade),
		Notes:         optional(input.Notes),
		PDFURL:        pdfURL,
	}
	if err := s.Repo.Insert(ctx, rec); err != nil {
		if delErr := s.Store.Remove(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("orphaned artifact cleanup failed")
		}
		return nil, err
	}
	return rec, nil
}

// BulkFailure pairs a failed row with its error message.
type BulkFailure struct {
	Input NuevaConstancia `json:"datos"`
	Error string          `json:"error"`
}

// BulkResult reports one bulk run.
type BulkResult struct {
	Succeeded int           `json:"exitosas"`
	Failures  []BulkFailure `json:"errores"`
}

// CreateBulk issues rows strictly sequentially with a fixed inter-row delay
// (load shaping, not correctness). One row's failure never aborts the batch;
// every failure is captured and reported. An ImportBatch audit row is written
// at the end, best-effort.
func (s *Service) CreateBulk(ctx context.Context, rows []NuevaConstancia, baseURL string) *BulkResult {
	res := &BulkResult{Failures: []BulkFailure{}}

	for i, row := range rows {
		log.Info().Int("row", i+1).Int("total", len(rows)).Str("nombre", row.FullName).Msg("processing bulk constancia")

		rec, err := s.Create(ctx, row, baseURL)
		if err != nil {
			log.Error().Err(err).Int("row", i+1).Msg("bulk constancia failed")
			res.Failures = append(res.Failures, BulkFailure{Input: row, Error: err.Error()})
		} else {
			log.Info().Int("row", i+1).Str("folio", rec.Folio).Msg("bulk constancia created")
			res.Succeeded++
		}

		if i < len(rows)-1 {
			s.pause(ctx)
		}
	}

	s.recordBatch(ctx, len(rows), res)
	return res
}

// GetByFolio resolves a folio for public verification. Read-only.
func (s *Service) GetByFolio(ctx context.Context, f string) (*models.Constancia, error) {
	return s.Repo.FindByFolio(ctx, f)
}

// List returns all constancias, newest first.
func (s *Service) List(ctx context.Context) ([]models.Constancia, error) {
	return s.Repo.ListAll(ctx)
}

// pause waits the configured inter-row delay. A canceled context cuts the
// wait short; the remaining rows then fail fast and are captured like any
// other per-row failure.
func (s *Service) pause(ctx context.Context) {
	delay := s.BulkDelay
	if delay <= 0 {
		delay = defaultBulkDelay
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (s *Service) recordBatch(ctx context.Context, total int, res *BulkResult) {
	if s.DB == nil {
		return
	}
	var failures datatypes.JSON
	if len(res.Failures) > 0 {
		if b, err := json.Marshal(res.Failures); err == nil {
			failures = datatypes.JSON(b)
		}
	}
	batch := &models.ImportBatch{TotalRows: total, Succeeded: res.Succeeded, Failures: failures}
	if err := s.DB.WithContext(ctx).Create(batch).Error; err != nil {
		log.Warn().Err(err).Msg("import batch audit record failed")
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
