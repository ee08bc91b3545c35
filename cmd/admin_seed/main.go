// Command admin_seed prepares a fresh installation: it prints the bcrypt hash
// to put in ADMIN_PASSWORD_HASH and stores the initial payment fee settings.
package main

import (
	"context"
	"errors"
	"fmt"

	"payfee/internal/config"
	"payfee/internal/models"
	"payfee/internal/repositories"
	"payfee/internal/validation"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()
	config.SetupLogger()

	if adminPassword := config.GetEnv("ADMIN_PASSWORD", ""); adminPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash password")
		}
		fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hashed)
	} else {
		log.Info().Msg("ADMIN_PASSWORD not set, skipping admin hash")
	}

	db, err := repositories.InitDB(repositories.LoadDBConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer repositories.CloseDB(db)

	ctx := context.Background()
	repo := repositories.NewSettingsRepository(db)

	if _, err := repo.Get(ctx); err == nil {
		log.Info().Msg("Payment fee settings already exist")
		return
	} else if !errors.Is(err, repositories.ErrSettingsNotFound) {
		log.Fatal().Err(err).Msg("Failed to read payment fee settings")
	}

	gateways := config.LoadCheckoutConfig().Gateways
	rate, methods, err := validation.FeeSettings(
		config.GetEnv("PAYMENT_FEE_RATE", "0"),
		config.GetListEnv("PAYMENT_FEE_METHODS", nil),
		gateways,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid PAYMENT_FEE_RATE or PAYMENT_FEE_METHODS")
	}

	if err := repo.Save(ctx, &models.FeeSettings{
		PercentageRate: rate.String(),
		PaymentMethods: methods,
		UpdatedBy:      "admin_seed",
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to save payment fee settings")
	}

	log.Info().Str("percentage_rate", rate.String()).Strs("payment_methods", methods).Msg("Payment fee settings created")
}
