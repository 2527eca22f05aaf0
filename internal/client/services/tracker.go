package services

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"

	"github.com/moneytrack/moneytrack/internal/client/api"
	"github.com/moneytrack/moneytrack/internal/client/models"
	"github.com/moneytrack/moneytrack/internal/client/repositories/session"
	"github.com/moneytrack/moneytrack/internal/common"
)

// TrackerService exposes the authenticated part of the backend API: profile
// lookup and transactions. Every call reads the stored token; when none is
// present it fails fast with common.ErrNotSignedIn instead of issuing a
// request the server would reject anyway.
type TrackerService interface {
	Profile(ctx context.Context) (models.Profile, error)
	AddTransaction(ctx context.Context, tx models.NewTransaction) error
	Report(ctx context.Context, f models.TransactionFilter) (models.Report, error)
}

type trackerService struct {
	client   api.Client
	db       *sql.DB
	validate *validator.Validate
}

func NewTrackerService(client api.Client, db *sql.DB) TrackerService {
	return &trackerService{client: client, db: db, validate: validator.New()}
}

func (s *trackerService) currentToken(ctx context.Context) (string, error) {
	repo := session.NewSQLiteRepository(s.db)
	token, err := repo.Get(ctx, session.KeyToken)
	if err != nil {
		return "", err
	}
	if token == nil {
		return "", common.ErrNotSignedIn
	}
	return string(token), nil
}

func (s *trackerService) Profile(ctx context.Context) (models.Profile, error) {
	token, err := s.currentToken(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	return s.client.Me(ctx, token)
}

func (s *trackerService) AddTransaction(ctx context.Context, tx models.NewTransaction) error {
	if err := s.validate.Struct(tx); err != nil {
		return validationError(err)
	}

	token, err := s.currentToken(ctx)
	if err != nil {
		return err
	}
	return s.client.AddTransaction(ctx, token, tx)
}

func (s *trackerService) Report(ctx context.Context, f models.TransactionFilter) (models.Report, error) {
	token, err := s.currentToken(ctx)
	if err != nil {
		return models.Report{}, err
	}
	return s.client.Transactions(ctx, token, f)
}
