package usecase

import (
	"context"
	"testing"

	adapterrepo "estatehub/internal/adapter/repository"
	"estatehub/internal/domain/entity"
	"estatehub/internal/infrastructure/docstore"
	"estatehub/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnquiryUseCase(t *testing.T) (*EnquiryUseCase, *docstore.MemoryStore) {
	t.Helper()

	store := docstore.NewMemoryStore()
	enquiryRepo := adapterrepo.NewDocstoreEnquiryRepository(store)
	listingRepo := adapterrepo.NewDocstoreListingRepository(store)
	return NewEnquiryUseCase(enquiryRepo, listingRepo), store
}

func TestSubmitRejectsShortPhone(t *testing.T) {
	uc, _ := newEnquiryUseCase(t)

	_, err := uc.Submit(context.Background(), SubmitEnquiryInput{
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "987654321",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSubmitAcceptsFormattedPhone(t *testing.T) {
	uc, _ := newEnquiryUseCase(t)

	enquiry, err := uc.Submit(context.Background(), SubmitEnquiryInput{
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "+91 98765 43210",
	})

	require.NoError(t, err)
	assert.Equal(t, "+91 98765 43210", enquiry.Phone)
}

func TestSubmitRejectsBareDomainEmail(t *testing.T) {
	uc, _ := newEnquiryUseCase(t)

	_, err := uc.Submit(context.Background(), SubmitEnquiryInput{
		Name:  "Asha",
		Email: "a@b",
		Phone: "9876543210",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSubmitRejectsUnknownSource(t *testing.T) {
	uc, _ := newEnquiryUseCase(t)

	_, err := uc.Submit(context.Background(), SubmitEnquiryInput{
		Name:   "Asha",
		Email:  "asha@example.com",
		Phone:  "9876543210",
		Source: "walk-in",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSubmitHomeLoanEnquiry(t *testing.T) {
	uc, _ := newEnquiryUseCase(t)

	enquiry, err := uc.Submit(context.Background(), SubmitEnquiryInput{
		Name:   "Asha",
		Email:  "asha@example.com",
		Phone:  "9876543210",
		Source: entity.SourceHomeLoans,
		Extra: map[string]string{
			"location":      "Hyderabad",
			"preferredBank": "SBI",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.EnquiryStatusNew, enquiry.Status)
	assert.Equal(t, entity.SourceHomeLoans, enquiry.Source)
	assert.Equal(t, DefaultEnquiryMessage, enquiry.Message)
	assert.False(t, enquiry.CreatedAt.IsZero())

	stored, err := uc.Get(context.Background(), enquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, "SBI", stored.Extra["preferredBank"])
	assert.Equal(t, "Hyderabad", stored.Extra["location"])
}

func TestUpdateStatusMovesForwardOnly(t *testing.T) {
	uc, _ := newEnquiryUseCase(t)

	enquiry, err := uc.Submit(context.Background(), SubmitEnquiryInput{
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "9876543210",
	})
	require.NoError(t, err)

	// Skipping a stage is fine.
	updated, err := uc.UpdateStatus(context.Background(), enquiry.ID, entity.EnquiryStatusClosed)
	require.NoError(t, err)
	assert.Equal(t, entity.EnquiryStatusClosed, updated.Status)

	// Moving backward is not.
	_, err = uc.UpdateStatus(context.Background(), enquiry.ID, entity.EnquiryStatusContacted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// Neither is staying put.
	_, err = uc.UpdateStatus(context.Background(), enquiry.ID, entity.EnquiryStatusClosed)
	require.Error(t, err)
}

func TestListRejectsUnknownFilters(t *testing.T) {
	uc, _ := newEnquiryUseCase(t)

	_, _, err := uc.List(context.Background(), "walk-in", "", 10, "")
	require.Error(t, err)

	_, _, err = uc.List(context.Background(), "", "pending", 10, "")
	require.Error(t, err)
}
