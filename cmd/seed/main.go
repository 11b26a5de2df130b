// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"docukit/internal/infrastructure/storage/sqlite"
	"docukit/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "docukit.db"
	}

	db, err := sqlite.Open(dbPath)
	if err != nil {
		log.Fatalw("failed to open database", "error", err)
	}
	defer db.Close()

	if err := sqlite.InitSchema(ctx, db); err != nil {
		log.Fatalw("failed to initialize schema", "error", err)
	}
	log.Infow("schema ready", "path", dbPath)

	if err := seedDemoData(ctx, db); err != nil {
		log.Fatalw("failed to seed demo data", "error", err)
	}

	log.Info("seeding completed successfully")
}

// seedDemoData inserts a small self-consistent dataset: one seller company
// with personnel, one client with geography and contacts, a project, a
// bilingual product pair and an order line for each product.
func seedDemoData(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`INSERT OR IGNORE INTO companies (id, name, address, logo_path, payment_info, phone, email, website, vat_id, registration_number)
		 VALUES (1, 'Docukit Trading GmbH', 'Hauptstrasse 12, 10115 Berlin', 'docukit.png',
		         'IBAN DE89 3704 0044 0532 0130 00', '+49 30 5557 1234', 'sales@docukit.example',
		         'www.docukit.example', 'DE312456789', 'HRB 98765 B')`,
		`INSERT OR IGNORE INTO personnel (id, company_id, name, role, email) VALUES
		 (1, 1, 'Martin Weber', 'seller', 'm.weber@docukit.example'),
		 (2, 1, 'Sabine Krause', 'technical_manager', 's.krause@docukit.example')`,

		`INSERT OR IGNORE INTO countries (id, name) VALUES (1, 'France'), (2, 'Turkey')`,
		`INSERT OR IGNORE INTO cities (id, country_id, name) VALUES (1, 1, 'Lyon'), (2, 2, 'Izmir')`,

		`INSERT OR IGNORE INTO clients (id, name, company_name, project_identifier, country_id, city_id, primary_need_description, price)
		 VALUES (1, 'Globex', 'Globex Corporation', 'PRJ-2026-001', 1, 1, 'Production line modernization', '125000')`,
		`INSERT OR IGNORE INTO contacts (id, name, email, phone, position) VALUES
		 (1, 'Jeanne Moreau', 'j.moreau@globex.example', '+33 4 7212 0001', 'Purchasing Manager'),
		 (2, 'Luc Besson', 'l.besson@globex.example', NULL, 'Plant Engineer')`,
		`INSERT OR IGNORE INTO client_contacts (client_id, contact_id, is_primary_for_client) VALUES
		 (1, 1, 1), (1, 2, 0)`,

		`INSERT OR IGNORE INTO statuses (id, name) VALUES (1, 'In Progress'), (2, 'Completed')`,
		`INSERT OR IGNORE INTO projects (id, client_id, name, description, status_id, budget, progress_percentage, start_date, deadline_date)
		 VALUES (1, 1, 'Line Modernization Phase 1', 'Replace legacy conveyors', 1, '125000', 40, '2026-02-01', '2026-11-30')`,

		`INSERT OR IGNORE INTO products (id, name, description, language_code, base_unit_price, unit_of_measure, weight, dimensions) VALUES
		 (1, 'Conveyor Drive Unit', 'Heavy-duty drive unit, 4kW', 'en', '2450.00', 'pcs', 85.5, '60x40x35 cm'),
		 (2, 'Unité d''entraînement de convoyeur', 'Unité d''entraînement robuste, 4kW', 'fr', '2450.00', 'pcs', 85.5, '60x40x35 cm'),
		 (3, 'Control Cabinet', 'Pre-wired control cabinet', 'en', '5890.00', 'pcs', 120, '80x60x200 cm')`,
		`INSERT OR IGNORE INTO product_equivalencies (product_a_id, product_b_id) VALUES (1, 2)`,

		`INSERT OR IGNORE INTO media (id, filepath, thumbnail_path, title) VALUES
		 (1, 'products/drive_unit.jpg', 'products/thumbs/drive_unit.jpg', 'Drive unit')`,
		`INSERT OR IGNORE INTO product_media_links (product_id, media_id, display_order, alt_text) VALUES
		 (1, 1, 0, 'Conveyor drive unit')`,

		`INSERT OR IGNORE INTO client_project_products (id, client_id, project_id, product_id, quantity, unit_price_override, serial_number) VALUES
		 (1, 1, 1, 1, 4, '2300.00', 'DU-2026-0441'),
		 (2, 1, 1, 3, 1, NULL, NULL)`,

		`INSERT OR IGNORE INTO client_document_notes (id, client_id, document_type, language_code, note_content, is_active) VALUES
		 (1, 1, 'proforma', 'en', 'Goods remain property of the seller until full payment.' || char(10) || 'Delivery time 6-8 weeks after down payment.', 1),
		 (2, 1, 'proforma', 'fr', 'La marchandise reste la propriété du vendeur jusqu''au paiement intégral.', 1)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed statement failed: %w", err)
		}
	}
	return nil
}
