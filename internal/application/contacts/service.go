package contacts

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mgeraldo/contact-book/internal/domain"
)

type Service struct {
	repo ContactRepo
}

func NewService(repo ContactRepo) *Service {
	return &Service{repo: repo}
}

// Input is the client-writable part of a contact. It has no owner field by
// construction: the owner always comes from the verified caller identity.
type Input struct {
	Name  string
	Email string
	Phone string
}

func (in *Input) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
}

func (in Input) validate() error {
	if in.Name == "" {
		return domain.ErrMissingField("name")
	}
	if in.Phone == "" {
		return domain.ErrMissingField("phone")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, ownerID string, in Input) (domain.Contact, error) {
	if strings.TrimSpace(ownerID) == "" {
		return domain.Contact{}, domain.ErrTokenInvalid()
	}
	in.normalize()
	if err := in.validate(); err != nil {
		return domain.Contact{}, err
	}

	c := domain.Contact{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) List(ctx context.Context, ownerID string, f Filter) ([]domain.Contact, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, domain.ErrTokenInvalid()
	}
	return s.repo.List(ctx, ownerID, f)
}

func (s *Service) GetByID(ctx context.Context, id, ownerID string) (domain.Contact, error) {
	if strings.TrimSpace(ownerID) == "" {
		return domain.Contact{}, domain.ErrTokenInvalid()
	}
	return s.repo.GetByID(ctx, id, ownerID)
}

// Replace swaps the full client-writable document. Validation is applied
// to the resulting document, and the stored owner is preserved no matter
// what the request carried.
func (s *Service) Replace(ctx context.Context, id, ownerID string, in Input) (domain.Contact, error) {
	if strings.TrimSpace(ownerID) == "" {
		return domain.Contact{}, domain.ErrTokenInvalid()
	}
	in.normalize()
	if err := in.validate(); err != nil {
		return domain.Contact{}, err
	}

	c := domain.Contact{
		OwnerID: ownerID,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
	}
	return s.repo.Replace(ctx, id, ownerID, c)
}

// Update merges the given fields into an existing contact. Fields that are
// required on the full document may not be blanked out.
func (s *Service) Update(ctx context.Context, id, ownerID string, p Patch) (domain.Contact, error) {
	if strings.TrimSpace(ownerID) == "" {
		return domain.Contact{}, domain.ErrTokenInvalid()
	}
	if p.Name != nil {
		v := strings.TrimSpace(*p.Name)
		if v == "" {
			return domain.Contact{}, domain.ErrInvalidField("name", "must not be empty")
		}
		p.Name = &v
	}
	if p.Phone != nil {
		v := strings.TrimSpace(*p.Phone)
		if v == "" {
			return domain.Contact{}, domain.ErrInvalidField("phone", "must not be empty")
		}
		p.Phone = &v
	}
	if p.Email != nil {
		v := strings.TrimSpace(*p.Email)
		p.Email = &v
	}
	return s.repo.Update(ctx, id, ownerID, p)
}

// Delete removes the contact and returns its prior value.
func (s *Service) Delete(ctx context.Context, id, ownerID string) (domain.Contact, error) {
	if strings.TrimSpace(ownerID) == "" {
		return domain.Contact{}, domain.ErrTokenInvalid()
	}
	return s.repo.Delete(ctx, id, ownerID)
}
