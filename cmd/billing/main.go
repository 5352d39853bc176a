// Runs one billing pass: every active subscription box whose next
// billing date has passed gets its cycle processed and persisted.
// Intended to run from cron or a scheduler.
package main

import (
	"context"
	"log"
	"time"

	"bdn/internal/config"
	"bdn/internal/repositories"
	"bdn/internal/services/currency"
	"bdn/internal/services/fee"
	"bdn/internal/services/subscription"
	"bdn/internal/services/subscriptionbox"
)

func main() {
	config.LoadEnv()
	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("Failed to close database connection: %v", err)
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close Redis connection: %v", err)
			}
		}
	}()

	ctx := context.Background()

	converter := currency.NewConverter(nil, currency.NewRateCache(currency.DefaultCacheTTL))
	if err := converter.Warm(ctx); err != nil {
		log.Fatalf("Failed to warm exchange rates: %v", err)
	}

	boxRepo := repositories.NewSubscriptionBoxRepository(repositories.DB)
	subRepo := repositories.NewSubscriptionRepository(repositories.DB)
	statusProvider := subscription.NewService(subRepo, repositories.CacheService)
	boxSvc := subscriptionbox.NewService(fee.NewCalculator(converter), statusProvider)

	batch := config.GetIntEnv("BILLING_BATCH_SIZE", 100)
	boxes, err := boxRepo.GetDueBoxes(ctx, time.Now(), batch)
	if err != nil {
		log.Fatalf("Failed to list due boxes: %v", err)
	}
	log.Printf("Billing pass: %d boxes due", len(boxes))

	processed, failed := 0, 0
	for _, box := range boxes {
		plan, err := boxRepo.GetPlan(ctx, box.PlanID)
		if err != nil {
			log.Printf("Skipping box %s: %v", box.ID, err)
			failed++
			continue
		}

		pricing, err := boxSvc.CalculatePricing(ctx, plan, box.Quantity, box.UserID)
		if err != nil {
			log.Printf("Skipping box %s: %v", box.ID, err)
			failed++
			continue
		}

		result, err := boxSvc.ProcessNextShipment(box, pricing)
		if err != nil {
			log.Printf("Skipping box %s: %v", box.ID, err)
			failed++
			continue
		}

		if err := boxRepo.SaveCycle(ctx, result.UpdatedBox, result.Order, result.Shipment); err != nil {
			log.Printf("Failed to save cycle for box %s: %v", box.ID, err)
			failed++
			continue
		}

		log.Printf("Billed box %s: shipment %d, %.2f %s",
			box.ID, result.Order.ShipmentNumber, result.Order.Amount, result.Order.Currency)
		processed++
	}

	log.Printf("Billing pass complete: %d processed, %d failed", processed, failed)
}
