package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pitcherapp/pitcher/internal/models"
	"github.com/pitcherapp/pitcher/internal/repository"
)

func setupPitchService(t *testing.T) *PitchService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Pitch{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewPitchService(repository.NewPitchRepository(db), "+62")
}

func TestPitchService_Submit(t *testing.T) {
	svc := setupPitchService(t)

	pitch, err := svc.Submit(SubmitInput{
		Name:    "Ana",
		Phone:   "81234",
		Idea:    "app",
		Funding: "1000000",
	})
	require.NoError(t, err)
	require.Equal(t, "+6281234", pitch.Phone)
	require.Equal(t, int64(1000000), pitch.FundingAmount)
	require.Equal(t, "IDR", pitch.Currency)
	require.NotZero(t, pitch.ID)
}

func TestPitchService_SubmitRejectsBadFunding(t *testing.T) {
	svc := setupPitchService(t)

	for _, funding := range []string{"a lot", "-100", "0"} {
		_, err := svc.Submit(SubmitInput{
			Name:    "Ana",
			Phone:   "81234",
			Idea:    "app",
			Funding: funding,
		})
		require.ErrorIs(t, err, ErrInvalidFunding, "funding %q must be rejected", funding)
	}

	pitches, err := svc.List()
	require.NoError(t, err)
	require.Empty(t, pitches)
}

func TestPitchService_RemoveIsIdempotent(t *testing.T) {
	svc := setupPitchService(t)

	pitch, err := svc.Submit(SubmitInput{Name: "Ana", Phone: "81234", Idea: "app", Funding: "1000"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(pitch.ID))

	pitches, err := svc.List()
	require.NoError(t, err)
	require.Empty(t, pitches)

	// Removing the same ID again still succeeds.
	require.NoError(t, svc.Remove(pitch.ID))
}

func TestPitchService_VerifyPayment(t *testing.T) {
	svc := setupPitchService(t)

	pitch, err := svc.Submit(SubmitInput{Name: "Ana", Phone: "81234", Idea: "app", Funding: "1000000"})
	require.NoError(t, err)

	// Exact 50% boundary passes.
	require.NoError(t, svc.VerifyPayment(pitch.ID, "500000"))

	// Above the threshold passes.
	require.NoError(t, svc.VerifyPayment(pitch.ID, "1000000"))

	// One below the boundary is rejected.
	require.ErrorIs(t, svc.VerifyPayment(pitch.ID, "499999"), ErrPaymentTooLow)

	// Malformed or non-positive amounts are rejected, not coerced.
	require.ErrorIs(t, svc.VerifyPayment(pitch.ID, "half"), ErrInvalidPayAmount)
	require.ErrorIs(t, svc.VerifyPayment(pitch.ID, "-500000"), ErrInvalidPayAmount)
	require.ErrorIs(t, svc.VerifyPayment(pitch.ID, "0"), ErrInvalidPayAmount)

	// A missing pitch is a distinct not-found outcome.
	require.ErrorIs(t, svc.VerifyPayment(pitch.ID+1, "500000"), ErrPitchNotFound)
}

func TestPitchService_VerifyPaymentHugePayment(t *testing.T) {
	svc := setupPitchService(t)

	pitch, err := svc.Submit(SubmitInput{Name: "Ana", Phone: "81234", Idea: "app", Funding: "1000000"})
	require.NoError(t, err)

	// A payment near the int64 ceiling is far above the threshold and must
	// pass; doubling it would wrap around.
	require.NoError(t, svc.VerifyPayment(pitch.ID, "9223372036854775807"))
}
