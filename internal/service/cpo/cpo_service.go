package cpo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
	"github.com/adriandotdev/emsp-v2/internal/pkg/logger"
	"github.com/adriandotdev/emsp-v2/internal/pkg/mailer"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store"
	"github.com/adriandotdev/emsp-v2/internal/pkg/utils"
)

// partyIDAttempts bounds the collision-retry loop; three uppercase
// letters give plenty of room, so exhausting this means something is
// wrong with the table, not the generator.
const partyIDAttempts = 10

type Service struct {
	store  store.Store
	mailer mailer.Mailer
}

func NewCPOService(store store.Store, mailer mailer.Mailer) *Service {
	return &Service{store: store, mailer: mailer}
}

// RegisterCPO onboards an operator: generates a unique party id and a
// temporary password, calls the registration procedure, and mails the
// credentials. Owner names are unique case-insensitively.
func (s *Service) RegisterCPO(ctx context.Context, req *domain.RegisterCPORequest) (*domain.CPODetails, error) {
	exists, err := s.store.CheckCPOExistsByName(ctx, req.CPOOwnerName)
	if err != nil {
		return nil, fmt.Errorf("store.CheckCPOExistsByName: %w", err)
	}
	if exists {
		return nil, constants.ErrCPOExists
	}

	partyID, err := s.generatePartyID(ctx, req.CPOOwnerName)
	if err != nil {
		return nil, err
	}

	password := utils.GeneratePassword()
	tokenC := uuid.NewString()

	result, err := s.store.RegisterCPO(ctx, store.RegisterCPOParams{
		Username:      req.Username,
		Password:      utils.HashPassword(password),
		PartyID:       partyID,
		CPOOwnerName:  req.CPOOwnerName,
		ContactName:   req.ContactName,
		ContactNumber: req.ContactNumber,
		ContactEmail:  req.ContactEmail,
		OCPPReady:     req.OCPPReady != nil && *req.OCPPReady,
		TokenC:        tokenC,
		Logo:          req.Logo,
	})
	if err != nil {
		return nil, fmt.Errorf("store.RegisterCPO: %w", err)
	}
	if result.BadRequest() {
		return nil, constants.NewBadRequest(result.Status)
	}

	if err := s.mailer.SendCredentials(req.ContactEmail, req.Username, password); err != nil {
		// Registration is committed; a failed mail must not undo it.
		logger.Errorf(ctx, "send credentials to %s: %v", req.ContactEmail, err)
	}

	return &domain.CPODetails{
		PartyID:       partyID,
		CPOOwnerName:  req.CPOOwnerName,
		ContactName:   req.ContactName,
		ContactNumber: req.ContactNumber,
		ContactEmail:  req.ContactEmail,
		TokenC:        tokenC,
	}, nil
}

func (s *Service) generatePartyID(ctx context.Context, ownerName string) (string, error) {
	for attempt := 0; attempt < partyIDAttempts; attempt++ {
		candidate := utils.PartyIDCandidate(ownerName, attempt)

		taken, err := s.store.PartyIDExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("store.PartyIDExists: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", constants.ErrPartyIDGenerationFailure
}

func (s *Service) GetCPODetails(ctx context.Context, cpoID int64) (*domain.CPODetails, error) {
	details, err := s.store.GetCPODetailsByID(ctx, cpoID)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrCPONotFound
		}
		return nil, fmt.Errorf("store.GetCPODetailsByID: %w", err)
	}

	return details, nil
}

func (s *Service) GetLogo(ctx context.Context, cpoID int64) (string, error) {
	logo, err := s.store.GetCPOLogoByID(ctx, cpoID)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return "", constants.ErrCPONotFound
		}
		return "", fmt.Errorf("store.GetCPOLogoByID: %w", err)
	}

	return logo, nil
}

func (s *Service) UpdateLogo(ctx context.Context, cpoID int64, logo string) error {
	if err := s.store.UpdateCPOLogoByID(ctx, cpoID, logo); err != nil {
		return fmt.Errorf("store.UpdateCPOLogoByID: %w", err)
	}
	return nil
}

func (s *Service) GetPendingImportCounts(ctx context.Context, cpoID int64) (*domain.PendingImportCounts, error) {
	counts, err := s.store.GetPendingImportCounts(ctx, cpoID)
	if err != nil {
		return nil, fmt.Errorf("store.GetPendingImportCounts: %w", err)
	}
	return counts, nil
}
