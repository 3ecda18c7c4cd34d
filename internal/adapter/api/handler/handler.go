package handler

import (
	"estatehub/internal/usecase"
)

var (
	listingHandler  *ListingHandler
	enquiryHandler  *EnquiryHandler
	blogHandler     *BlogHandler
	partnerHandler  *PartnerHandler
	settingsHandler *SettingsHandler
	userHandler     *UserHandler
	fileHandler     *FileHandler
)

func Setup(
	listingUseCase *usecase.ListingUseCase,
	enquiryUseCase *usecase.EnquiryUseCase,
	blogUseCase *usecase.BlogUseCase,
	partnerUseCase *usecase.PartnerUseCase,
	settingsUseCase *usecase.SettingsUseCase,
	userUseCase *usecase.UserUseCase,
) {
	listingHandler = NewListingHandler(listingUseCase)
	enquiryHandler = NewEnquiryHandler(enquiryUseCase)
	blogHandler = NewBlogHandler(blogUseCase)
	partnerHandler = NewPartnerHandler(partnerUseCase)
	settingsHandler = NewSettingsHandler(settingsUseCase)
	userHandler = NewUserHandler(userUseCase)
}

func SetupFileHandler(fileUseCase *usecase.FileUseCase) {
	fileHandler = NewFileHandler(fileUseCase)
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetEnquiryHandler() *EnquiryHandler {
	return enquiryHandler
}

func GetBlogHandler() *BlogHandler {
	return blogHandler
}

func GetPartnerHandler() *PartnerHandler {
	return partnerHandler
}

func GetSettingsHandler() *SettingsHandler {
	return settingsHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}
