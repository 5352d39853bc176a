// Seeds a demo merchant, product, and BDN+ subscriptions for local
// development.
package main

import (
	"context"
	"log"

	"bdn/internal/config"
	"bdn/internal/models"
	"bdn/internal/repositories"

	"github.com/google/uuid"
)

func main() {
	config.LoadEnv()
	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Printf("Failed to close database connection: %v", err)
				}
			}
		}
	}()

	ctx := context.Background()

	merchantID := config.GetEnv("SEED_MERCHANT_ID", "merchant-demo")
	userID := config.GetEnv("SEED_USER_ID", "user-demo")

	products := repositories.NewProductRepository(repositories.DB)
	product := &models.Product{
		ID:               uuid.NewString(),
		MerchantID:       merchantID,
		Name:             "Coffee of the Month",
		Description:      "Single-origin roast, shipped fresh",
		ProductType:      models.ProductTypePhysical,
		Price:            24.99,
		Currency:         "USD",
		ShippingRequired: true,
		ShippingCost:     4.99,
		Active:           true,
	}
	if err := products.Create(ctx, product); err != nil {
		log.Fatalf("Failed to seed product: %v", err)
	}
	log.Printf("Seeded product %s for merchant %s", product.ID, merchantID)

	subs := repositories.NewSubscriptionRepository(repositories.DB)
	seedSubs := []*models.BDNPlusSubscription{
		{
			SubscriberID:   userID,
			SubscriberType: "consumer",
			Tier:           models.TierBDNPlus,
			Status:         models.SubscriptionStatusActive,
		},
		{
			SubscriberID:   merchantID,
			SubscriberType: "business",
			Tier:           models.TierBDNPlusBusiness,
			Status:         models.SubscriptionStatusActive,
		},
	}
	for _, sub := range seedSubs {
		if err := subs.Upsert(ctx, sub); err != nil {
			log.Fatalf("Failed to seed subscription: %v", err)
		}
	}
	log.Printf("Seeded BDN+ for %s and BDN+ Business for %s", userID, merchantID)
}
