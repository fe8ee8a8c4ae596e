package main

import (
	"context"
	"log/slog"
	"os"

	"petlink/config"
	"petlink/internal/delivery"
	"petlink/internal/delivery/http"
	"petlink/internal/delivery/http/middleware"
	"petlink/internal/delivery/http/router/handler"
	"petlink/internal/domain/service"
	"petlink/internal/infra/auth"
	"petlink/internal/infra/firebase"
	logs "petlink/internal/infra/log"
	"petlink/internal/infra/media/imagekit"
	"petlink/internal/infra/persistence/firestore"
	"petlink/internal/infra/pubsub"
	"petlink/internal/infra/qrcode"
	"petlink/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			firebase.New,
			firestore.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewPetRepository,
			firestore.NewUserRepository,
			firestore.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewFirebaseVerifier,
			newMediaService,
			newQRCodeService,
		),
	)
}

// newMediaService creates the media CDN gateway. A missing ImageKit block
// disables uploads without stopping the process.
func newMediaService(cfg *config.Config, logger *slog.Logger) service.MediaService {
	return imagekit.NewMediaService(cfg.ImageKit, logger)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPetService,
			impl.NewScanService,
			impl.NewUserService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPetHandler,
			handler.NewPublicHandler,
			handler.NewUserHandler,
			handler.NewNotificationHandler,
			handler.NewMediaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
