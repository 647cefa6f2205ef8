package service

import (
	"github.com/MKhiriev/expense-tracker/internal/config"
	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/store"
)

type Services struct {
	AuthService     AuthService
	ExpenseService  ExpenseService
	SalaryService   SalaryService
	CategoryService CategoryService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ExpenseService:  NewExpenseService(storages.ExpenseRepository, logger),
		SalaryService:   NewSalaryService(storages.SalaryRepository, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, logger),
	}
}
