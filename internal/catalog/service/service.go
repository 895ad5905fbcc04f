package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/catalog/repository"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
)

// ErrInvalidBook возвращается при некорректных входных данных книги
var ErrInvalidBook = errors.New("invalid book")

// CatalogService содержит бизнес-логику каталога книг.
// Телеметрия приходит через конструктор, а не через глобальные otel-синглтоны.
type CatalogService struct {
	repo         repository.BookRepository
	tel          *observability.Telemetry
	logger       *zap.Logger
	booksCreated metric.Int64Counter
}

// NewCatalogService создаёт новый экземпляр CatalogService
func NewCatalogService(repo repository.BookRepository, tel *observability.Telemetry, logger *zap.Logger) *CatalogService {
	s := &CatalogService{
		repo:   repo,
		tel:    tel,
		logger: logger,
	}

	var err error
	s.booksCreated, err = tel.Meter().Int64Counter("bookstore.livros.cadastrados",
		metric.WithDescription("Total de livros cadastrados"),
	)
	if err != nil {
		logger.Warn("Failed to create books counter", zap.Error(err))
	}

	return s
}

// CreateBookInput содержит входные данные для создания книги
type CreateBookInput struct {
	Title string
	Stock int32
}

// CreateBook валидирует и сохраняет новую книгу
func (s *CatalogService) CreateBook(ctx context.Context, input CreateBookInput) (repository.Book, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "criar_livro")
	defer span.End()

	log := observability.L(ctx, s.logger)

	if strings.TrimSpace(input.Title) == "" {
		return repository.Book{}, fmt.Errorf("%w: titulo must not be empty", ErrInvalidBook)
	}
	if input.Stock < 0 {
		return repository.Book{}, fmt.Errorf("%w: estoque must not be negative", ErrInvalidBook)
	}

	book, err := s.repo.Create(ctx, repository.Book{
		Title: input.Title,
		Stock: input.Stock,
	})
	if err != nil {
		log.Error("Failed to create book", zap.Error(err))
		return repository.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("livro.id", book.ID),
		attribute.String("livro.titulo", book.Title),
	)
	if s.booksCreated != nil {
		s.booksCreated.Add(ctx, 1)
	}

	log.Info("Book created", zap.Int64("book_id", book.ID), zap.String("title", book.Title))
	return book, nil
}

// GetBook получает книгу по ID
func (s *CatalogService) GetBook(ctx context.Context, id int64) (repository.Book, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "buscar_livro_por_id")
	defer span.End()

	span.SetAttributes(attribute.Int64("livro.id", id))

	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			observability.L(ctx, s.logger).Warn("Book not found", zap.Int64("book_id", id))
			return repository.Book{}, err
		}
		return repository.Book{}, fmt.Errorf("failed to get book: %w", err)
	}
	return book, nil
}

// ListBooks возвращает все книги каталога
func (s *CatalogService) ListBooks(ctx context.Context) ([]repository.Book, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "listar_todos_os_livros")
	defer span.End()

	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	span.SetAttributes(attribute.Int("livros", len(books)))
	return books, nil
}

// DeleteBook удаляет книгу и возвращает удалённую запись
func (s *CatalogService) DeleteBook(ctx context.Context, id int64) (repository.Book, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "remover_livro")
	defer span.End()

	span.SetAttributes(attribute.Int64("livro.id", id))

	book, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Book{}, err
		}
		return repository.Book{}, fmt.Errorf("failed to delete book: %w", err)
	}

	observability.L(ctx, s.logger).Info("Book deleted", zap.Int64("book_id", id))
	return book, nil
}

// WriteDownStock списывает один экземпляр книги (вызывается Order сервисом
// после одобренного платежа)
func (s *CatalogService) WriteDownStock(ctx context.Context, id int64) (repository.Book, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "baixa_estoque")
	defer span.End()

	span.SetAttributes(attribute.Int64("livro.id", id))

	book, err := s.repo.DecrementStock(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrOutOfStock) {
			observability.L(ctx, s.logger).Warn("Stock write-down rejected",
				zap.Int64("book_id", id), zap.Error(err))
			return repository.Book{}, err
		}
		return repository.Book{}, fmt.Errorf("failed to write down stock: %w", err)
	}

	span.SetAttributes(attribute.Int("livro.estoque", int(book.Stock)))
	observability.L(ctx, s.logger).Info("Stock written down",
		zap.Int64("book_id", id), zap.Int32("stock", book.Stock))
	return book, nil
}
