package folio

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"constancias-backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Format is PC-<year>-<5-digit zero-padded sequence>, e.g. PC-2024-00001.
const prefix = "PC"

// Allocator hands out folios from a per-year counter row. Now is overridable
// for tests; nil means time.Now.
type Allocator struct {
	DB  *gorm.DB
	Now func() time.Time
}

// Allocate returns the next folio. The counter row is incremented inside a
// transaction so two allocations can never read the same sequence. If the
// counter cannot be advanced (connectivity, missing table), allocation
// degrades to a random 5-digit suffix and issuance proceeds; the random path
// does not guarantee uniqueness — a collision surfaces later as a duplicate
// folio on insert.
func (a *Allocator) Allocate(ctx context.Context) string {
	year := a.now().Year()

	seq, err := a.nextSeq(ctx, year)
	if err != nil {
		log.Warn().Err(err).Int("year", year).Msg("folio counter unavailable, falling back to random folio")
		return fmt.Sprintf("%s-%d-%05d", prefix, year, rand.Intn(100000))
	}
	return fmt.Sprintf("%s-%d-%05d", prefix, year, seq)
}

func (a *Allocator) nextSeq(ctx context.Context, year int) (int64, error) {
	var seq int64
	err := a.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.FolioCounter{}).
			Where("year = ?", year).
			UpdateColumn("seq", gorm.Expr("seq + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// First folio of the year. A concurrent first allocation can lose
			// the insert race on the primary key; that fails the transaction
			// and Allocate degrades to the random fallback.
			if err := tx.Create(&models.FolioCounter{Year: year, Seq: 1}).Error; err != nil {
				return err
			}
		}
		var ctr models.FolioCounter
		if err := tx.Where("year = ?", year).First(&ctr).Error; err != nil {
			return err
		}
		seq = ctr.Seq
		return nil
	})
	return seq, err
}

func (a *Allocator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
