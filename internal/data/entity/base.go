package entity

import (
	"time"
)

// Base carries identity and audit metadata shared by every catalog record.
// CreatedAt is fixed when the value is constructed and never rewritten.
type Base struct {
	ID         int64      `db:"id"`
	CreatedAt  time.Time  `db:"created_at"`
	ModifiedAt *time.Time `db:"modified_at"`
	IsDeleted  bool       `db:"is_deleted"`
}

func NewBase() Base {
	return Base{CreatedAt: time.Now().UTC()}
}

// Record returns the embedded Base so generic code can reach it through any entity pointer.
func (b *Base) Record() *Base {
	return b
}

// Touch stamps the last-modified time.
func (b *Base) Touch(now time.Time) {
	t := now.UTC()
	b.ModifiedAt = &t
}
