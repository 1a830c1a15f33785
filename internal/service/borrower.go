package service

import (
	"context"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/repository"
)

type borrowerService struct {
	borrowerRepo repository.BorrowerRepository
}

func NewBorrowerService(borrowerRepo repository.BorrowerRepository) BorrowerService {
	return &borrowerService{borrowerRepo: borrowerRepo}
}

func (s *borrowerService) Create(ctx context.Context, b *domain.Borrower) error {
	return s.borrowerRepo.Create(ctx, b)
}

func (s *borrowerService) Get(ctx context.Context, id int32) (*domain.Borrower, error) {
	return s.borrowerRepo.GetByID(ctx, id)
}

func (s *borrowerService) Update(ctx context.Context, b *domain.Borrower) error {
	return s.borrowerRepo.Update(ctx, b)
}

func (s *borrowerService) List(ctx context.Context) ([]domain.Borrower, error) {
	return s.borrowerRepo.List(ctx)
}

func (s *borrowerService) Delete(ctx context.Context, id int32) error {
	return s.borrowerRepo.SoftDelete(ctx, id)
}
