package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"marketplace/cmd"
	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres/cartrepo"
	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/adapters/out/postgres/reviewrepo"
	"marketplace/internal/adapters/out/postgres/sellerrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := connectDB(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migrateDB(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	policy, err := earningsPolicy(configs)
	if err != nil {
		log.Fatalf("Invalid payout configuration: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, policy, logger)
	defer app.Close()

	jobManager := jobs.NewJobManager(app.CreateProcessPayoutsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaBrokers:            strings.Split(goDotEnvVariable("KAFKA_BROKERS"), ","),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
		PayoutBaseFeeCents:      goDotEnvInt64("PAYOUT_BASE_FEE_CENTS"),
		PayoutPerKmFeeCents:     goDotEnvInt64("PAYOUT_PER_KM_FEE_CENTS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvInt64(key string) int64 {
	value, err := strconv.ParseInt(goDotEnvVariable(key), 10, 64)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return value
}

func connectDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func migrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&productrepo.ReservationDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&cartrepo.EntryDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.EarningDTO{},
		&deliveryrepo.RatingDTO{},
		&reviewrepo.ReviewDTO{},
		&sellerrepo.ApplicationDTO{},
		&userrepo.UserDTO{},
	)
}

func earningsPolicy(configs cmd.Config) (services.EarningsPolicy, error) {
	baseFee, err := kernel.MoneyFromCents(configs.PayoutBaseFeeCents)
	if err != nil {
		return services.EarningsPolicy{}, err
	}

	perKmFee, err := kernel.MoneyFromCents(configs.PayoutPerKmFeeCents)
	if err != nil {
		return services.EarningsPolicy{}, err
	}

	return services.NewEarningsPolicy(baseFee, perKmFee), nil
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateAddCartItemCommandHandler(),
		app.CreateUpdateCartItemCommandHandler(),
		app.CreateCheckoutCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateAssignRiderCommandHandler(),
		app.CreateUpdateDeliveryCommandHandler(),
		app.CreateCreateReviewCommandHandler(),
		app.CreateRateRiderCommandHandler(),
		app.CreateReviewSellerApplicationCommandHandler(),
		app.CreateGetCartQueryHandler(),
		app.CreateGetSellerOrdersQueryHandler(),
		app.CreateGetRiderEarningsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
