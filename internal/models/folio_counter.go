package models

// FolioCounter holds the next-sequence state for folio allocation, one row
// per year. Incremented inside a transaction so concurrent allocations on the
// same row serialize at the database.
type FolioCounter struct {
	Year int   `gorm:"column:year;primaryKey" json:"year"`
	Seq  int64 `gorm:"column:seq;not null;default:0" json:"seq"`
}

func (FolioCounter) TableName() string {
	return "folio_counters"
}
