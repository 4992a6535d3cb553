package domain

import (
	"database/sql"

	"gorm.io/gorm"
)

// TxRunner is the slice of *gorm.DB the services need for multi-statement
// writes. Satisfied by *gorm.DB; tests substitute a pass-through runner.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

var _ TxRunner = (*gorm.DB)(nil)
