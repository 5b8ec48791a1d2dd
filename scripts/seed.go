package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/medilinkx/benefits-backend/internal/adapters/database"
	"github.com/medilinkx/benefits-backend/internal/adapters/search"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/infrastructure/clients/postgres"
	"github.com/medilinkx/benefits-backend/internal/infrastructure/clients/typesense"
	"github.com/medilinkx/benefits-backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	var searchRepo *search.TypesenseAdapter
	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Printf("Typesense unavailable, skipping search indexing: %v", err)
	} else {
		if err := tsClient.InitSchema(context.Background()); err != nil {
			log.Printf("Failed to init Typesense schema: %v", err)
		}
		searchRepo = search.NewTypesenseAdapter(tsClient)
	}

	hospitalRepo := database.NewHospitalAdapter(pgClient)
	schemeRepo := database.NewSchemeAdapter(pgClient)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				recommendation_matches,
				recommendations,
				transactions,
				vouchers,
				wallets,
				preferred_locations,
				health_ids,
				hospitals,
				schemes
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	// 1. Seed Schemes
	schemes := []entities.Scheme{
		{
			ID:               uuid.New().String(),
			Name:             "Diabetes Care Plus",
			Description:      "Comprehensive diabetes management program designed for Type 2 diabetes patients. Includes specialized care, regular monitoring, medication coverage, and dietary consultation.",
			Coverage:         5000,
			ProcessingTime:   "2-3 days",
			NetworkHospitals: 500,
			MatchPercentage:  95,
			Category:         entities.SchemeCategoryDiabetesCare,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		},
		{
			ID:               uuid.New().String(),
			Name:             "General Health Shield",
			Description:      "Basic health insurance covering routine checkups, emergency care, preventive treatments, and essential medical procedures with nationwide coverage.",
			Coverage:         3000,
			ProcessingTime:   "1-2 days",
			NetworkHospitals: 800,
			MatchPercentage:  87,
			Category:         entities.SchemeCategoryGeneralHealth,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		},
		{
			ID:               uuid.New().String(),
			Name:             "Family Care Package",
			Description:      "Extended family health coverage including spouse and dependents under one comprehensive plan with shared benefits and family-oriented services.",
			Coverage:         8000,
			ProcessingTime:   "3-5 days",
			NetworkHospitals: 600,
			MatchPercentage:  78,
			Category:         entities.SchemeCategoryFamilyCare,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		},
		{
			ID:               uuid.New().String(),
			Name:             "Emergency Care Plus",
			Description:      "Specialized emergency care coverage with 24/7 support, ambulance services, critical care coverage, and immediate medical attention.",
			Coverage:         10000,
			ProcessingTime:   "Immediate",
			NetworkHospitals: 1200,
			MatchPercentage:  92,
			Category:         entities.SchemeCategoryEmergencyCare,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		},
	}

	for _, s := range schemes {
		if err := schemeRepo.Create(ctx, &s); err != nil {
			log.Printf("Failed to create scheme %s: %v", s.Name, err)
		}
	}
	log.Printf("Seeded %d schemes", len(schemes))

	// 2. Seed Hospitals (Chennai and Trichy network)
	hospitals := []entities.Hospital{
		{
			ID:                uuid.New().String(),
			Name:              "Apollo Hospitals",
			Location:          "Greams Road, Chennai",
			City:              "Chennai",
			State:             "Tamil Nadu",
			Coordinates:       &entities.Coordinates{Latitude: 13.0604, Longitude: 80.2496},
			Specializations:   []string{"Cardiology", "Diabetes Care", "General Surgery", "Oncology"},
			Rating:            4.8,
			AvailableServices: []string{"Emergency Care", "OPD", "Inpatient", "Diagnostics", "ICU"},
			Phone:             "+91-44-2829-3333",
			Email:             "info@apollohospitals.com",
			Website:           "https://www.apollohospitals.com",
			IsActive:          true,
		},
		{
			ID:                uuid.New().String(),
			Name:              "Fortis Malar Hospital",
			Location:          "Adyar, Chennai",
			City:              "Chennai",
			State:             "Tamil Nadu",
			Coordinates:       &entities.Coordinates{Latitude: 12.9716, Longitude: 80.2206},
			Specializations:   []string{"Cardiology", "Neurology", "Orthopedics", "Emergency Medicine"},
			Rating:            4.6,
			AvailableServices: []string{"Emergency Care", "OPD", "Inpatient", "Trauma Center", "ICU"},
			Phone:             "+91-44-4200-2222",
			Email:             "info@fortismalar.com",
			Website:           "https://www.fortishealthcare.com",
			IsActive:          true,
		},
		{
			ID:                uuid.New().String(),
			Name:              "MIOT International",
			Location:          "Manapakkam, Chennai",
			City:              "Chennai",
			State:             "Tamil Nadu",
			Coordinates:       &entities.Coordinates{Latitude: 13.0067, Longitude: 80.1833},
			Specializations:   []string{"Orthopedics", "Cardiology", "General Surgery", "Urology"},
			Rating:            4.7,
			AvailableServices: []string{"Emergency Care", "OPD", "Inpatient", "Diagnostics", "Surgery"},
			Phone:             "+91-44-2249-2288",
			Email:             "info@miot.in",
			Website:           "https://www.miot.in",
			IsActive:          true,
		},
		{
			ID:                uuid.New().String(),
			Name:              "Gleneagles Global Hospitals",
			Location:          "Perumbakkam, Chennai",
			City:              "Chennai",
			State:             "Tamil Nadu",
			Coordinates:       &entities.Coordinates{Latitude: 12.9010, Longitude: 80.2209},
			Specializations:   []string{"Oncology", "Cardiology", "Neurology", "Transplant"},
			Rating:            4.5,
			AvailableServices: []string{"Emergency Care", "OPD", "Inpatient", "Research", "Specialized Care"},
			Phone:             "+91-44-4477-7777",
			Email:             "info@gleneaglesglobalhospitals.com",
			Website:           "https://www.gleneaglesglobalhospitals.com",
			IsActive:          true,
		},
		{
			ID:                uuid.New().String(),
			Name:              "Sri Ramachandra Medical Centre",
			Location:          "Porur, Chennai",
			City:              "Chennai",
			State:             "Tamil Nadu",
			Coordinates:       &entities.Coordinates{Latitude: 13.0358, Longitude: 80.1561},
			Specializations:   []string{"Cardiology", "General Medicine", "Pediatrics", "Gynecology"},
			Rating:            4.4,
			AvailableServices: []string{"Emergency Care", "OPD", "Inpatient", "Diagnostics"},
			Phone:             "+91-44-2476-8000",
			Email:             "info@sriramachandra.edu.in",
			Website:           "https://www.sriramachandra.edu.in",
			IsActive:          true,
		},
		{
			ID:                uuid.New().String(),
			Name:              "Apollo Speciality Hospitals",
			Location:          "Race Course Road, Trichy",
			City:              "Trichy",
			State:             "Tamil Nadu",
			Coordinates:       &entities.Coordinates{Latitude: 10.7905, Longitude: 78.7047},
			Specializations:   []string{"Cardiology", "Diabetes Care", "General Surgery", "Nephrology"},
			Rating:            4.7,
			AvailableServices: []string{"Emergency Care", "OPD", "Inpatient", "Diagnostics", "Dialysis"},
			Phone:             "+91-431-407-7777",
			Email:             "info@apollohospitals.com",
			Website:           "https://www.apollohospitals.com",
			IsActive:          true,
		},
		{
			ID:                uuid.New().String(),
			Name:              "Kaveri Medical Centre",
			Location:          "Thillai Nagar, Trichy",
			City:              "Trichy",
			State:             "Tamil Nadu",
			Coordinates:       &entities.Coordinates{Latitude: 10.8045, Longitude: 78.6884},
			Specializations:   []string{"Cardiology", "Orthopedics", "General Medicine", "Pediatrics"},
			Rating:            4.5,
			AvailableServices: []string{"Emergency Care", "OPD", "Inpatient", "Diagnostics"},
			Phone:             "+91-431-276-0000",
			Email:             "info@kaverimedical.com",
			Website:           "https://www.kaverimedical.com",
			IsActive:          true,
		},
		{
			ID:                uuid.New().String(),
			Name:              "Sri Ramakrishna Hospital",
			Location:          "Srirangam, Trichy",
			City:              "Trichy",
			State:             "Tamil Nadu",
			Coordinates:       &entities.Coordinates{Latitude: 10.8631, Longitude: 78.6869},
			Specializations:   []string{"General Medicine", "Surgery", "Gynecology", "Pediatrics"},
			Rating:            4.3,
			AvailableServices: []string{"Emergency Care", "OPD", "Inpatient", "Maternity Care"},
			Phone:             "+91-431-243-3333",
			Email:             "info@sriramakrishnahospital.com",
			Website:           "https://www.sriramakrishnahospital.com",
			IsActive:          true,
		},
		{
			ID:                uuid.New().String(),
			Name:              "Vijaya Hospital",
			Location:          "Cantonment, Trichy",
			City:              "Trichy",
			State:             "Tamil Nadu",
			Coordinates:       &entities.Coordinates{Latitude: 10.8050, Longitude: 78.6910},
			Specializations:   []string{"Cardiology", "Neurology", "Orthopedics", "Emergency Medicine"},
			Rating:            4.4,
			AvailableServices: []string{"Emergency Care", "OPD", "Inpatient", "Trauma Center"},
			Phone:             "+91-431-241-4141",
			Email:             "info@vijayahospital.com",
			Website:           "https://www.vijayahospital.com",
			IsActive:          true,
		},
		{
			ID:                uuid.New().String(),
			Name:              "Mahatma Gandhi Memorial Government Hospital",
			Location:          "Fort Station Road, Trichy",
			City:              "Trichy",
			State:             "Tamil Nadu",
			Coordinates:       &entities.Coordinates{Latitude: 10.7905, Longitude: 78.7047},
			Specializations:   []string{"General Medicine", "Surgery", "Pediatrics", "Gynecology"},
			Rating:            4.2,
			AvailableServices: []string{"Emergency Care", "OPD", "Inpatient", "Public Health Services"},
			Phone:             "+91-431-241-4000",
			Email:             "info@mgmgh.gov.in",
			Website:           "https://www.mgmgh.gov.in",
			IsActive:          true,
		},
	}

	indexed := 0
	for _, h := range hospitals {
		h.CreatedAt = time.Now()
		h.UpdatedAt = time.Now()
		if err := hospitalRepo.Create(ctx, &h); err != nil {
			log.Printf("Failed to create hospital %s: %v", h.Name, err)
			continue
		}
		if searchRepo != nil {
			if err := searchRepo.Index(ctx, &h); err != nil {
				log.Printf("Failed to index hospital %s: %v", h.Name, err)
				continue
			}
			indexed++
		}
	}

	log.Printf("Seeded %d hospitals (%d indexed in Typesense)", len(hospitals), indexed)
	log.Println("Database seeding completed")
}
