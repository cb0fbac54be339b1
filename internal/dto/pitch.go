package dto

import (
	"github.com/pitcherapp/pitcher/internal/models"
	"github.com/pitcherapp/pitcher/internal/utils"
)

// PitchDTO represents a pitch on the investor page and in API responses.
// FundingDisplay is the localized currency string derived from the stored
// numeric amount; the amount itself remains the source of truth.
type PitchDTO struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Idea           string `json:"idea"`
	FundingAmount  int64  `json:"funding_amount"`
	Currency       string `json:"currency"`
	FundingDisplay string `json:"funding_display"`
}

// ToPitchDTO converts a Pitch model to PitchDTO
func ToPitchDTO(pitch models.Pitch) PitchDTO {
	return PitchDTO{
		ID:             pitch.ID,
		Name:           pitch.Name,
		Phone:          pitch.Phone,
		Idea:           pitch.Idea,
		FundingAmount:  pitch.FundingAmount,
		Currency:       pitch.Currency,
		FundingDisplay: utils.FormatIDR(pitch.FundingAmount),
	}
}

// ToPitchDTOs converts a slice of pitches
func ToPitchDTOs(pitches []models.Pitch) []PitchDTO {
	dtos := make([]PitchDTO, len(pitches))
	for i, pitch := range pitches {
		dtos[i] = ToPitchDTO(pitch)
	}
	return dtos
}
