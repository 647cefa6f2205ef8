package store

import (
	"github.com/MKhiriev/expense-tracker/internal/logger"
)

// Storages bundles every repository behind its interface so that the service
// layer receives one injectable dependency.
type Storages struct {
	UserRepository     UserRepository
	CategoryRepository CategoryRepository
	ExpenseRepository  ExpenseRepository
	SalaryRepository   SalaryRepository
}

// NewStorages wires all repositories to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
		ExpenseRepository:  NewExpenseRepository(db, logger),
		SalaryRepository:   NewSalaryRepository(db, logger),
	}
}
