// AngelaMos | 2026
// entity.go

package banner

import (
	"time"
)

type Banner struct {
	ID        string     `db:"id"`
	ImageURL  string     `db:"image_url"`
	ObjectKey string     `db:"object_key"`
	CreatedAt time.Time  `db:"created_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (b *Banner) IsDeleted() bool {
	return b.DeletedAt != nil
}
