package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docukit/internal/domain/documents"
)

// End-to-end assembly over a real database file: repositories, resolver,
// formatting and totals working together.

func seedAssemblyFixture(t *testing.T, db *sql.DB) {
	t.Helper()

	exec(t, db, `INSERT INTO companies (id, name, address, phone, email, website, vat_id) VALUES
		(1, 'Docukit Trading GmbH', 'Hauptstrasse 12, Berlin', '+49 30 555', 'sales@docukit.example', 'www.docukit.example', 'DE312')`)
	exec(t, db, `INSERT INTO personnel (company_id, name, role) VALUES
		(1, 'Martin Weber', 'seller'),
		(1, 'Sabine Krause', 'technical_manager')`)

	exec(t, db, `INSERT INTO countries (id, name) VALUES (1, 'France')`)
	exec(t, db, `INSERT INTO cities (id, country_id, name) VALUES (1, 1, 'Lyon')`)
	exec(t, db, `INSERT INTO clients (id, name, company_name, project_identifier, country_id, city_id, price) VALUES
		(1, 'Globex', 'Globex Corporation', 'PRJ-2026-001', 1, 1, '125000')`)
	exec(t, db, `INSERT INTO contacts (id, name, email, position) VALUES
		(1, 'Jeanne Moreau', 'j.moreau@globex.example', 'Purchasing Manager')`)
	exec(t, db, `INSERT INTO client_contacts (client_id, contact_id, is_primary_for_client) VALUES (1, 1, 1)`)

	exec(t, db, `INSERT INTO statuses (id, name) VALUES (1, 'In Progress')`)
	exec(t, db, `INSERT INTO projects (id, client_id, name, status_id, budget, start_date) VALUES
		(1, 1, 'Line Modernization', 1, '125000', '2026-02-01')`)

	exec(t, db, `INSERT INTO products (id, name, language_code, base_unit_price, unit_of_measure) VALUES
		(1, 'Conveyor Drive Unit', 'en', '2450.00', 'pcs'),
		(2, 'Unité d''entraînement', 'fr', '2450.00', 'pcs'),
		(3, 'Control Cabinet', 'en', '5890.00', 'pcs')`)
	exec(t, db, `INSERT INTO product_equivalencies (product_a_id, product_b_id) VALUES (1, 2)`)

	exec(t, db, `INSERT INTO client_project_products (id, client_id, project_id, product_id, quantity, unit_price_override) VALUES
		(1, 1, 1, 1, 4, '2300.00'),
		(2, 1, 1, 3, 1, NULL)`)

	exec(t, db, `INSERT INTO client_document_notes (client_id, document_type, language_code, note_content, is_active) VALUES
		(1, 'proforma', 'fr', 'Ligne un' || char(10) || 'Ligne deux', 1)`)
}

func newAssemblyService(t *testing.T, db *sql.DB, appRoot string) *documents.Service {
	t.Helper()
	return documents.NewService(documents.Config{
		Companies: NewCompanyRepo(db),
		Clients:   NewClientRepo(db),
		Projects:  NewProjectRepo(db),
		Orders:    NewOrderRepo(db),
		Products:  NewProductRepo(db),
		Notes:     NewNoteRepo(db),
		Paths:     documents.Paths{AppRoot: appRoot, LogoSubdir: "logos", MediaBase: filepath.Join(appRoot, "media")},
		Clock:     func() time.Time { return time.Date(2026, 3, 15, 9, 30, 45, 0, time.UTC) },
	})
}

func TestAssembleFromDatabase(t *testing.T) {
	db := openTestDB(t)
	seedAssemblyFixture(t, db)
	appRoot := t.TempDir()
	svc := newAssemblyService(t, db, appRoot)

	projectID := int64(1)
	dc := svc.AssembleDocumentContext(context.Background(), documents.AssembleParams{
		ClientID:       1,
		CompanyID:      1,
		TargetLanguage: "fr",
		ProjectID:      &projectID,
		Extras: map[string]any{
			"vat_rate_percentage":             20.0,
			"current_document_type_for_notes": "proforma",
		},
	})
	require.NotNil(t, dc)

	assert.Equal(t, "Docukit Trading GmbH", dc.Seller.CompanyName)
	assert.Equal(t, "Martin Weber", dc.Seller.Personnel.RepresentativeName)
	assert.Equal(t, "Sabine Krause", dc.Seller.Personnel.TechnicalManagerName)

	assert.Equal(t, "Globex Corporation", dc.Client.CompanyName)
	assert.Equal(t, "Jeanne Moreau", dc.Client.ContactPersonName)
	assert.Equal(t, "Lyon, France", dc.Client.CityZipCountry)

	assert.Equal(t, "Line Modernization", dc.Project.Name)
	assert.Equal(t, "In Progress", dc.Project.StatusName)

	require.Len(t, dc.Products, 2)
	drive := dc.Products[0]
	assert.Equal(t, "Unité d'entraînement", drive.Name, "fr equivalent wins for fr target")
	assert.True(t, drive.IsLanguageMatch)
	assert.Equal(t, "€2,300.00", drive.UnitPriceFormatted, "negotiated price beats base price")
	cabinet := dc.Products[1]
	assert.Equal(t, "Control Cabinet", cabinet.Name)
	assert.False(t, cabinet.IsLanguageMatch)

	// 4 x 2300 + 1 x 5890 = 15090; +20% VAT = 18108
	assert.Equal(t, "€15,090.00", dc.Doc.SubtotalAmount)
	assert.Equal(t, "€18,108.00", dc.Doc.GrandTotalAmount)

	assert.Equal(t, "Ligne un<br>Ligne deux", dc.Doc.ClientSpecificFooterNotes)
	assert.Equal(t, "Projet", dc.Lang["cover_project_label"])
	assert.Equal(t, "PRO-20260315-093045", dc.Doc.ProformaID)
}

func TestAssembleResolvesLogoAndMedia(t *testing.T) {
	db := openTestDB(t)
	seedAssemblyFixture(t, db)
	appRoot := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(appRoot, "logos"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appRoot, "logos", "docukit.png"), []byte("png"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(appRoot, "media", "products"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appRoot, "media", "products", "drive.jpg"), []byte("jpg"), 0o644))

	exec(t, db, `UPDATE companies SET logo_path = 'docukit.png' WHERE id = 1`)
	exec(t, db, `INSERT INTO media (id, filepath, thumbnail_path) VALUES (1, 'products/drive.jpg', 'products/missing_thumb.jpg')`)
	exec(t, db, `INSERT INTO product_media_links (product_id, media_id, display_order, alt_text) VALUES (1, 1, 0, 'Drive unit')`)

	svc := newAssemblyService(t, db, appRoot)
	dc := svc.AssembleDocumentContext(context.Background(), documents.AssembleParams{
		ClientID:       1,
		CompanyID:      1,
		TargetLanguage: "en",
		LiteItems:      []documents.LiteItem{{ProductID: 1, Quantity: 1}},
	})

	require.NotNil(t, dc.Seller.CompanyLogoPath)
	assert.Contains(t, *dc.Seller.CompanyLogoPath, "file://")
	assert.Contains(t, *dc.Seller.CompanyLogoPath, "docukit.png")

	require.Len(t, dc.Products, 1)
	require.Len(t, dc.Products[0].Images, 1)
	img := dc.Products[0].Images[0]
	require.NotNil(t, img.URL)
	assert.Contains(t, *img.URL, "drive.jpg")
	require.NotNil(t, img.ThumbnailURL)
	assert.Equal(t, *img.URL, *img.ThumbnailURL, "missing thumbnail falls back to the full image")
	assert.Equal(t, "Drive unit", img.AltText)
}

func TestAssembleMissingClientFromDatabase(t *testing.T) {
	db := openTestDB(t)
	seedAssemblyFixture(t, db)
	svc := newAssemblyService(t, db, t.TempDir())

	dc := svc.AssembleDocumentContext(context.Background(), documents.AssembleParams{
		ClientID:       999,
		CompanyID:      1,
		TargetLanguage: "en",
	})

	require.NotNil(t, dc)
	assert.Equal(t, "N/A", dc.Client.CompanyName)
	assert.Empty(t, dc.Products)
	assert.Equal(t, "Docukit Trading GmbH", dc.Seller.CompanyName)
}
