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

	"ebazaar/internal/adapter/api"
	"ebazaar/internal/adapter/api/handler"
	apimiddleware "ebazaar/internal/adapter/api/middleware"
	"ebazaar/internal/adapter/api/router"
	"ebazaar/internal/adapter/repository"
	"ebazaar/internal/domain/service"
	"ebazaar/internal/infrastructure/firebase"
	"ebazaar/internal/infrastructure/ratelimit"
	"ebazaar/internal/usecase"
	"ebazaar/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	tenantRepo := repository.NewFirestoreTenantRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	paymentService := service.NewStripePaymentService(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.Currency)

	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, productRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, tenantRepo, firebaseAuthClient, paymentService)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, tenantRepo, orderRepo, userRepo, reviewUseCase, cfg.DefaultPageLimit)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(productRepo, tenantRepo, userRepo, paymentService, cfg.AppURL)
	libraryUseCase := usecase.NewLibraryUseCase(orderRepo, productRepo, reviewUseCase)
	webhookUseCase := usecase.NewWebhookUseCase(orderRepo, tenantRepo, userRepo, paymentService)

	handler.Setup(authUseCase, productUseCase, reviewUseCase, categoryUseCase, checkoutUseCase, libraryUseCase, webhookUseCase, cfg.DefaultPageLimit)
	handler.SetupHealthHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	router.Setup(e, authMiddleware, rateLimitMiddleware, authClient)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
