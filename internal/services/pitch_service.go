package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pitcherapp/pitcher/internal/models"
	"github.com/pitcherapp/pitcher/internal/repository"
	"github.com/pitcherapp/pitcher/internal/utils"
)

var (
	ErrNameRequired      = errors.New("name is required")
	ErrInvalidFunding    = errors.New("funding must be a positive whole number")
	ErrInvalidPayAmount  = errors.New("payment amount must be a positive whole number")
	ErrPitchNotFound     = errors.New("pitch not found")
	ErrPaymentTooLow     = errors.New("payment is less than 50% of the funding")
	ErrFailedToSavePitch = errors.New("failed to save pitch")
	ErrFailedToListPitch = errors.New("failed to fetch pitches")
	ErrFailedToDropPitch = errors.New("failed to remove pitch")
	ErrFailedToFindPitch = errors.New("failed to load pitch")
)

// PitchService handles pitch submission, listing, removal and the payment
// threshold check.
type PitchService struct {
	pitchRepo   repository.PitchRepository
	phonePrefix string
}

// NewPitchService creates a new PitchService. phonePrefix is the country
// code prepended to submitted phone numbers, e.g. "+62".
func NewPitchService(pitchRepo repository.PitchRepository, phonePrefix string) *PitchService {
	return &PitchService{
		pitchRepo:   pitchRepo,
		phonePrefix: phonePrefix,
	}
}

// SubmitInput carries the raw pitch form fields.
type SubmitInput struct {
	Name    string
	Phone   string
	Idea    string
	Funding string
}

// Submit validates a pitch submission and persists it. The phone number is
// stored with the country prefix prepended to the submitted local number;
// the funding amount is stored numerically.
func (s *PitchService) Submit(input SubmitInput) (*models.Pitch, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	amount, err := utils.ParseAmount(input.Funding)
	if err != nil || amount <= 0 {
		return nil, ErrInvalidFunding
	}

	pitch := &models.Pitch{
		Name:          name,
		Phone:         s.phonePrefix + strings.TrimSpace(input.Phone),
		Idea:          input.Idea,
		FundingAmount: amount,
		Currency:      "IDR",
	}

	if err := s.pitchRepo.Create(pitch); err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to save pitch")
		return nil, fmt.Errorf("%w: %v", ErrFailedToSavePitch, err)
	}

	return pitch, nil
}

// List returns every pitch in storage order.
func (s *PitchService) List() ([]models.Pitch, error) {
	pitches, err := s.pitchRepo.ListAll()
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch pitches")
		return nil, fmt.Errorf("%w: %v", ErrFailedToListPitch, err)
	}
	return pitches, nil
}

// Remove deletes a pitch by ID. Removing an absent ID succeeds; removal is
// idempotent by design.
func (s *PitchService) Remove(id uint64) error {
	if err := s.pitchRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint64("pitch_id", id).Msg("failed to remove pitch")
		return fmt.Errorf("%w: %v", ErrFailedToDropPitch, err)
	}
	return nil
}

// VerifyPayment checks a submitted payment against the pitch's funding
// target. The payment passes iff it covers at least half the target; the
// exact 50% boundary passes.
func (s *PitchService) VerifyPayment(id uint64, payAmount string) error {
	payment, err := utils.ParseAmount(payAmount)
	if err != nil || payment <= 0 {
		return ErrInvalidPayAmount
	}

	pitch, err := s.pitchRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPitchNotFound
		}
		log.Error().Err(err).Uint64("pitch_id", id).Msg("failed to load pitch")
		return fmt.Errorf("%w: %v", ErrFailedToFindPitch, err)
	}

	// payment >= funding-payment is 2p >= F without overflowing on large p;
	// both operands are positive here.
	if payment < pitch.FundingAmount-payment {
		return ErrPaymentTooLow
	}

	return nil
}
