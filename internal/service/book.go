package service

import (
	"context"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/repository"
)

type bookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) BookService {
	return &bookService{bookRepo: bookRepo}
}

func (s *bookService) Create(ctx context.Context, b *domain.Book) error {
	return s.bookRepo.Create(ctx, b)
}

func (s *bookService) Get(ctx context.Context, id int32) (*domain.Book, error) {
	return s.bookRepo.GetByID(ctx, id)
}

func (s *bookService) Update(ctx context.Context, b *domain.Book) error {
	return s.bookRepo.Update(ctx, b)
}

func (s *bookService) Delete(ctx context.Context, id int32) error {
	return s.bookRepo.Delete(ctx, id)
}

func (s *bookService) List(ctx context.Context, filter repository.BookFilter) ([]domain.Book, int32, error) {
	return s.bookRepo.List(ctx, filter)
}
