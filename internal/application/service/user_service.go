package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/domain/entity"
	"github.com/sellpoint/pos-api/internal/domain/enum"
	"github.com/sellpoint/pos-api/internal/domain/repository"
	"github.com/sellpoint/pos-api/pkg/apperror"
	"github.com/sellpoint/pos-api/pkg/pagination"
	"github.com/sellpoint/pos-api/pkg/utils"
)

// UserService handles cashier and customer account management
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateCashierInput represents the create cashier input
type CreateCashierInput struct {
	Name     string
	Email    string
	Password string
	Mobile   *string
}

// CreateCashier creates a cashier account (admin only path)
func (s *UserService) CreateCashier(ctx context.Context, input *CreateCashierInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	cashier := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Mobile:   input.Mobile,
		Role:     enum.RoleCashier,
	}
	if err := s.userRepo.Create(ctx, cashier); err != nil {
		return nil, err
	}
	return cashier, nil
}

// UpdateUserInput represents the update user input. Nil fields are untouched.
type UpdateUserInput struct {
	Name      *string
	Mobile    *string
	Birthdate *time.Time
	Password  *string
}

// UpdateCashier updates a cashier account
func (s *UserService) UpdateCashier(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != enum.RoleCashier {
		return nil, apperror.NewNotFoundError("Cashier")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Mobile != nil {
		user.Mobile = input.Mobile
	}
	if input.Birthdate != nil {
		user.Birthdate = input.Birthdate
	}
	if input.Password != nil {
		hashedPassword, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteCashier deletes a cashier account
func (s *UserService) DeleteCashier(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil || user.Role != enum.RoleCashier {
		return apperror.NewNotFoundError("Cashier")
	}
	return s.userRepo.Delete(ctx, id)
}

// ListCashiers lists cashier accounts with pagination and optional search
func (s *UserService) ListCashiers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.User], error) {
	users, total, err := s.userRepo.ListByRole(ctx, enum.RoleCashier, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(users, pag), nil
}

// ListCustomers lists customer accounts, searchable by name and mobile for the
// checkout lookup
func (s *UserService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.User], error) {
	users, total, err := s.userRepo.ListByRole(ctx, enum.RoleCustomer, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(users, pag), nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}
