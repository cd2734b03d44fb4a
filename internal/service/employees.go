package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pharmacy/m/domain"
	"pharmacy/m/internal/auth"
	"pharmacy/m/internal/store"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRegistration = errors.New("username, email, password and role are required")
	ErrInvalidRole         = errors.New("role must be pharmacist or manager")
)

// EmployeeRepository is the storage EmployeeService needs.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
}

// EmployeeService serves employee requests from the API.
type EmployeeService struct {
	repo EmployeeRepository
}

// NewEmployeeService returns an EmployeeService backed by repo.
func NewEmployeeService(repo EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// Register stores a new staff account. The returned employee carries no password.
func (s *EmployeeService) Register(ctx context.Context, username, email, password, role string) (*domain.Employee, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" || role == "" {
		return nil, ErrInvalidRegistration
	}
	if role != domain.RolePharmacist && role != domain.RoleManager {
		return nil, ErrInvalidRole
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	e := &domain.Employee{Username: username, Email: email, Password: hashed, Role: role}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	e.Password = ""
	return e, nil
}

// Login checks email and password and returns the account without its hash.
func (s *EmployeeService) Login(ctx context.Context, email, password string) (*domain.Employee, error) {
	e, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(e.Password, password) {
		return nil, ErrInvalidCredentials
	}
	e.Password = ""
	return e, nil
}

// ResetPassword hashes and stores a new password for employeeID.
func (s *EmployeeService) ResetPassword(ctx context.Context, employeeID int64, newPassword string) error {
	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, employeeID, hashed)
}
