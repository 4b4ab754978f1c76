package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	"github.com/m-bikko/kulsary-vent/internal/usecase/interfaces"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidCustomer  = errors.New("invalid customer")
)

// ICustomerUseCase exposes customer directory operations.

type ICustomerUseCase interface {
	Create(ctx context.Context, name, contactInfo string) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, id, name, contactInfo string) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, name, contactInfo string) (entities.Customer, error) {
	name = strings.TrimSpace(name)
	contactInfo = strings.TrimSpace(contactInfo)
	if name == "" || contactInfo == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}

	c := entities.Customer{
		ID:          uuid.NewString(),
		Name:        name,
		ContactInfo: contactInfo,
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

func (u *CustomerUseCase) Update(ctx context.Context, id, name, contactInfo string) (entities.Customer, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}

	name = strings.TrimSpace(name)
	contactInfo = strings.TrimSpace(contactInfo)
	if name == "" || contactInfo == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}

	existing.Name = name
	existing.ContactInfo = contactInfo
	return u.repo.Update(ctx, existing)
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomer
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCustomerNotFound
	}
	return nil
}
