package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"estatehub/internal/adapter/api"
	"estatehub/internal/adapter/api/handler"
	apimiddleware "estatehub/internal/adapter/api/middleware"
	"estatehub/internal/adapter/api/router"
	"estatehub/internal/adapter/repository"
	"estatehub/internal/domain/service"
	"estatehub/internal/infrastructure/docstore"
	"estatehub/internal/infrastructure/firebase"
	"estatehub/internal/infrastructure/storage"
	"estatehub/internal/usecase"
	"estatehub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	// Service account JSON from the environment wins (production); fall back
	// to a file path for local development.
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}

		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}

		log.Printf("Using Firebase service account from file: %s", credentialsPath)
		opt = option.WithCredentialsFile(credentialsPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	store := docstore.NewFirestoreStore(firestoreClient)

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	listingRepo := repository.NewDocstoreListingRepository(store)
	enquiryRepo := repository.NewDocstoreEnquiryRepository(store)
	blogRepo := repository.NewDocstoreBlogRepository(store)
	partnerRepo := repository.NewDocstorePartnerRepository(store)
	settingsRepo := repository.NewDocstoreSettingsRepository(store)
	fileMetadataRepo := repository.NewDocstoreFileMetadataRepository(store)
	userRepo := repository.NewDocstoreUserRepository(store)

	authClient := firebase.NewAuthClient(fbAuth)
	mediaService := service.NewMediaService()

	listingUseCase := usecase.NewListingUseCase(listingRepo, cfg.ListingPageSize)
	enquiryUseCase := usecase.NewEnquiryUseCase(enquiryRepo, listingRepo)
	blogUseCase := usecase.NewBlogUseCase(blogRepo)
	partnerUseCase := usecase.NewPartnerUseCase(partnerRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, authClient)
	fileUseCase := usecase.NewFileUseCase(mediaService, storageClient, fileMetadataRepo)

	handler.Setup(listingUseCase, enquiryUseCase, blogUseCase, partnerUseCase, settingsUseCase, userUseCase)
	handler.SetupFileHandler(fileUseCase)
	handler.SetupHealthHandler()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Validator = api.NewValidator()

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
