package constancias

import (
	"context"
	"errors"
	"strings"

	"constancias-backend/internal/models"

	"gorm.io/gorm"
)

// Repository persists constancia records. Folio uniqueness is enforced by the
// unique index on the folio column; Insert surfaces it as ErrDuplicateFolio
// (requires gorm.Config.TranslateError).
type Repository struct {
	DB *gorm.DB
}

func (r *Repository) Insert(ctx context.Context, c *models.Constancia) error {
	if err := r.DB.WithContext(ctx).Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateFolio
		}
		return err
	}
	return nil
}

func (r *Repository) FindByFolio(ctx context.Context, folio string) (*models.Constancia, error) {
	var c models.Constancia
	err := r.DB.WithContext(ctx).Where("folio = ?", NormalizeFolio(folio)).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]models.Constancia, error) {
	var list []models.Constancia
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// NormalizeFolio widens acceptance of hand-typed folios: surrounding
// whitespace is trimmed and the value upper-cased. Generated folios are
// already upper-case, so two stored folios can never collide through this.
func NormalizeFolio(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
