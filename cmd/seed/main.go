package main

// Loads a small set of sample vendors, quotation requests and requisitions
// for local development. Safe to run repeatedly: it skips seeding when any
// vendors already exist.

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/caffeinepub/supply-chain-management-app/internal/config"
	"github.com/caffeinepub/supply-chain-management-app/internal/infra"
	"github.com/caffeinepub/supply-chain-management-app/internal/model"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := infra.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	var count int64
	if err := db.Model(&model.Vendor{}).Count(&count).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to check existing data")
	}
	if count > 0 {
		log.Info().Int64("vendors", count).Msg("database already seeded, nothing to do")
		return
	}

	vendors := []model.Vendor{
		{
			CompanyName:   "Northfield Industrial Supply",
			ContactPerson: "Dana Whitfield",
			Email:         "dana@northfield-supply.example",
			PhoneNumber:   "+1-555-0142",
			Address:       "310 Harbor Rd, Portland, OR",
			Category:      "industrial",
			Status:        model.VendorActive,
		},
		{
			CompanyName:   "Cedar Office Solutions",
			ContactPerson: "Marcus Lee",
			Email:         "marcus@cedaroffice.example",
			PhoneNumber:   "+1-555-0187",
			Address:       "45 Birch Ave, Austin, TX",
			Category:      "office",
			Status:        model.VendorActive,
		},
		{
			CompanyName:   "Helix Lab Equipment",
			ContactPerson: "Priya Nair",
			Email:         "priya@helixlab.example",
			PhoneNumber:   "+1-555-0109",
			Address:       "8 Research Park Dr, Raleigh, NC",
			Category:      "laboratory",
			Status:        model.VendorInactive,
		},
	}
	if err := db.Create(&vendors).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed vendors")
	}

	now := time.Now().UTC()
	requests := []model.QuotationRequest{
		{
			Description:          "Nitrile gloves, size M",
			Quantity:             5000,
			UnitOfMeasurement:    "box",
			RequiredDeliveryDate: now.AddDate(0, 1, 0),
			RequestDate:          now,
			Status:               model.RequestPending,
		},
		{
			Description:          "Standing desks, adjustable",
			Quantity:             24,
			UnitOfMeasurement:    "unit",
			RequiredDeliveryDate: now.AddDate(0, 2, 0),
			RequestDate:          now,
			Status:               model.RequestPending,
		},
	}
	if err := db.Create(&requests).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed quotation requests")
	}

	quotation := model.Quotation{
		RequestID:          requests[0].ID,
		VendorID:           vendors[0].ID,
		UnitPrice:          decimal.NewFromFloat(8.40),
		TotalPrice:         decimal.NewFromFloat(42000),
		DeliveryTimeline:   "3 weeks",
		TermsAndConditions: "Net 30",
		ValidityPeriod:     now.AddDate(0, 3, 0),
		SubmissionDate:     now,
		Status:             model.QuotationSubmitted,
	}
	if err := db.Create(&quotation).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed quotation")
	}

	requisitions := []model.PurchaseRequisition{
		{
			RequestedBy:        "Sam Ortega",
			Department:         "Operations",
			TotalEstimatedCost: decimal.NewFromFloat(1250),
			Justification:      "Replacement safety gear for warehouse staff",
			Status:             model.RequisitionDraft,
			Items: []model.RequisitionItem{
				{Description: "Hard hats", Quantity: 25, EstimatedCost: decimal.NewFromFloat(18), SortOrder: 1},
				{Description: "Safety vests", Quantity: 40, EstimatedCost: decimal.NewFromFloat(20), SortOrder: 2},
			},
		},
		{
			RequestedBy:        "Ines Calder",
			Department:         "R&D",
			TotalEstimatedCost: decimal.NewFromFloat(9600),
			Justification:      "Bench equipment for the new prototyping lab",
			Status:             model.RequisitionPendingApproval,
			Items: []model.RequisitionItem{
				{Description: "Oscilloscope", Quantity: 2, EstimatedCost: decimal.NewFromFloat(3200), SortOrder: 1},
				{Description: "Soldering stations", Quantity: 8, EstimatedCost: decimal.NewFromFloat(400), SortOrder: 2},
			},
			ApprovalHistory: []model.ApprovalRecord{
				{Action: model.ActionSubmitted, ApproverName: "Ines Calder", Timestamp: now, SortOrder: 1},
			},
		},
	}
	if err := db.Create(&requisitions).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed requisitions")
	}

	log.Info().
		Int("vendors", len(vendors)).
		Int("requests", len(requests)).
		Int("requisitions", len(requisitions)).
		Msg("sample data loaded")
}
