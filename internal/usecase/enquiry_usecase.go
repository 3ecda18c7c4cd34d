package usecase

import (
	"context"
	"time"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/pkg/errors"
	"estatehub/pkg/utils"
)

// DefaultEnquiryMessage fills the message field when a form is submitted
// with it left blank.
const DefaultEnquiryMessage = "I am interested. Please contact me."

var validSources = map[string]bool{
	entity.SourcePropertyEnquiry:    true,
	entity.SourceHomeLoans:          true,
	entity.SourceInteriorDesign:     true,
	entity.SourcePropertyPromotions: true,
}

var statusRank = map[string]int{
	entity.EnquiryStatusNew:       0,
	entity.EnquiryStatusContacted: 1,
	entity.EnquiryStatusClosed:    2,
}

type EnquiryUseCase struct {
	enquiryRepo repository.EnquiryRepository
	listingRepo repository.ListingRepository
}

func NewEnquiryUseCase(enquiryRepo repository.EnquiryRepository, listingRepo repository.ListingRepository) *EnquiryUseCase {
	return &EnquiryUseCase{
		enquiryRepo: enquiryRepo,
		listingRepo: listingRepo,
	}
}

type SubmitEnquiryInput struct {
	ListingID string
	Name      string
	Email     string
	Phone     string
	AltPhone  string
	Message   string
	Source    string
	Extra     map[string]string
}

// Submit validates the form fully before any write. The stored record gets a
// server-assigned creation timestamp and starts in the "new" status; the
// public path never mutates an enquiry after this point.
func (uc *EnquiryUseCase) Submit(ctx context.Context, input SubmitEnquiryInput) (*entity.Enquiry, error) {
	if input.Name == "" {
		return nil, errors.BadRequest("Name is required", nil)
	}
	if !utils.IsValidEmail(input.Email) {
		return nil, errors.BadRequest("A valid email address is required", nil)
	}
	if !utils.IsValidPhone(input.Phone) {
		return nil, errors.BadRequest("Phone number must contain at least 10 digits", nil)
	}
	if input.AltPhone != "" && !utils.IsValidPhone(input.AltPhone) {
		return nil, errors.BadRequest("Alternate phone number must contain at least 10 digits", nil)
	}

	source := input.Source
	if source == "" {
		source = entity.SourcePropertyEnquiry
	}
	if !validSources[source] {
		return nil, errors.BadRequest("Invalid enquiry source", nil)
	}

	message := input.Message
	if message == "" {
		message = DefaultEnquiryMessage
	}

	enquiry := &entity.Enquiry{
		ListingID: input.ListingID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		AltPhone:  input.AltPhone,
		Message:   message,
		Source:    source,
		Extra:     input.Extra,
	}

	if err := uc.enquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, err
	}

	if enquiry.ListingID != "" {
		go func(listingID string) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = uc.listingRepo.IncrementEnquiries(ctx, listingID)
		}(enquiry.ListingID)
	}

	return enquiry, nil
}

func (uc *EnquiryUseCase) List(ctx context.Context, source, status string, limit int, cursor string) ([]*entity.Enquiry, string, error) {
	if source != "" && !validSources[source] {
		return nil, "", errors.BadRequest("Invalid enquiry source", nil)
	}
	if status != "" {
		if _, ok := statusRank[status]; !ok {
			return nil, "", errors.BadRequest("Invalid enquiry status", nil)
		}
	}
	return uc.enquiryRepo.List(ctx, source, status, limit, cursor)
}

func (uc *EnquiryUseCase) Get(ctx context.Context, id string) (*entity.Enquiry, error) {
	return uc.enquiryRepo.GetByID(ctx, id)
}

// UpdateStatus moves an enquiry along new -> contacted -> closed. Skipping
// ahead is allowed, moving backward is not.
func (uc *EnquiryUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.Enquiry, error) {
	newRank, ok := statusRank[status]
	if !ok {
		return nil, errors.BadRequest("Invalid enquiry status", nil)
	}

	enquiry, err := uc.enquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if newRank <= statusRank[enquiry.Status] {
		return nil, errors.BadRequest("Enquiry status can only move forward", nil)
	}

	if err := uc.enquiryRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	enquiry.Status = status
	return enquiry, nil
}
