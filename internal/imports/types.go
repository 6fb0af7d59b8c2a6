package imports

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ImportRecord is one audit entry per import attempt. Configuration content
// is never recorded; it may embed private keys.
type ImportRecord struct {
	ID         string    `gorm:"type:text;primaryKey"`
	TunnelName string    `gorm:"type:text;not null"`
	SourcePath string    `gorm:"type:text;not null"`
	SourceType string    `gorm:"type:text;not null"`
	Outcome    string    `gorm:"type:text;not null"`
	Detail     string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"type:timestamp;not null"`
}
