package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docukit/internal/core/apperror"
	"docukit/internal/domain/catalogs/company"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(context.Background(), db))
	return db
}

func exec(t *testing.T, db *sql.DB, query string, args ...any) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), query, args...)
	require.NoError(t, err)
}

func TestCompanyRepo(t *testing.T) {
	db := openTestDB(t)
	repo := NewCompanyRepo(db)
	ctx := context.Background()

	exec(t, db, `INSERT INTO companies (id, name, address, vat_id) VALUES (1, 'Acme GmbH', 'Berlin', 'DE123')`)
	exec(t, db, `INSERT INTO personnel (company_id, name, role, email) VALUES
		(1, 'Zoe Technician', 'technical_manager', 'zoe@acme.test'),
		(1, 'Adam Seller', 'seller', 'adam@acme.test')`)

	t.Run("get by id", func(t *testing.T) {
		comp, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Acme GmbH", comp.Name)
		require.NotNil(t, comp.VATID)
		assert.Equal(t, "DE123", *comp.VATID)
		assert.Nil(t, comp.LogoPath)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 99)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("personnel ordered by name", func(t *testing.T) {
		people, err := repo.ListPersonnel(ctx, 1)
		require.NoError(t, err)
		require.Len(t, people, 2)
		assert.Equal(t, "Adam Seller", people[0].Name)
		assert.Equal(t, company.RoleSeller, people[0].Role())
		assert.Equal(t, company.RoleTechnicalManager, people[1].Role())
	})

	t.Run("personnel empty for unknown company", func(t *testing.T) {
		people, err := repo.ListPersonnel(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, people)
	})
}

func TestClientRepoPrimaryContact(t *testing.T) {
	db := openTestDB(t)
	repo := NewClientRepo(db)
	ctx := context.Background()

	exec(t, db, `INSERT INTO clients (id, name, project_identifier) VALUES
		(1, 'Globex', 'PRJ-1'), (2, 'Initech', 'PRJ-2'), (3, 'Hooli', 'PRJ-3')`)
	exec(t, db, `INSERT INTO contacts (id, name, email) VALUES
		(10, 'Bob', 'bob@globex.test'),
		(11, 'Alice', 'alice@globex.test'),
		(12, 'Carol', 'carol@initech.test')`)
	exec(t, db, `INSERT INTO client_contacts (client_id, contact_id, is_primary_for_client) VALUES
		(1, 10, 0), (1, 11, 1), (2, 12, 0)`)

	t.Run("primary flag wins over name order", func(t *testing.T) {
		contact, err := repo.GetPrimaryContact(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Alice", contact.Name)
		assert.True(t, contact.PrimaryForClient)
	})

	t.Run("falls back to first by name", func(t *testing.T) {
		contact, err := repo.GetPrimaryContact(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Carol", contact.Name)
		assert.False(t, contact.PrimaryForClient)
	})

	t.Run("no contacts is not found", func(t *testing.T) {
		_, err := repo.GetPrimaryContact(ctx, 3)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestClientRepoPriceRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewClientRepo(db)
	ctx := context.Background()

	exec(t, db, `INSERT INTO clients (id, name, project_identifier, price) VALUES
		(1, 'Globex', 'PRJ-1', '1234567.89')`)

	cl, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, cl.Price.Valid)
	assert.Equal(t, "1234567.89", cl.Price.Decimal.String())
}

func TestClientRepoGeography(t *testing.T) {
	db := openTestDB(t)
	repo := NewClientRepo(db)
	ctx := context.Background()

	exec(t, db, `INSERT INTO countries (id, name) VALUES (1, 'France')`)
	exec(t, db, `INSERT INTO cities (id, country_id, name) VALUES (5, 1, 'Lyon')`)

	country, err := repo.GetCountry(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "France", country.Name)

	city, err := repo.GetCity(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Lyon", city.Name)
	assert.Equal(t, int64(1), city.CountryID)

	_, err = repo.GetCountry(ctx, 99)
	assert.True(t, apperror.IsNotFound(err))
	_, err = repo.GetCity(ctx, 99)
	assert.True(t, apperror.IsNotFound(err))
}

func TestProductRepo(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)
	ctx := context.Background()

	exec(t, db, `INSERT INTO products (id, name, language_code, base_unit_price) VALUES
		(1, 'Pump', 'en', '100.50'),
		(2, 'Pompe', 'fr', '100.50'),
		(3, 'Valve', 'en', '10')`)
	exec(t, db, `INSERT INTO product_equivalencies (product_a_id, product_b_id) VALUES (1, 2)`)
	exec(t, db, `INSERT INTO media (id, filepath, thumbnail_path, title) VALUES
		(1, 'media/pump.png', 'media/pump_thumb.png', 'Pump photo'),
		(2, 'media/pump2.png', NULL, NULL)`)
	exec(t, db, `INSERT INTO product_media_links (product_id, media_id, display_order, alt_text) VALUES
		(1, 2, 1, NULL), (1, 1, 0, 'front view')`)

	t.Run("batch fetch skips missing ids", func(t *testing.T) {
		products, err := repo.GetByIDs(ctx, []int64{3, 1, 99})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, int64(1), products[0].ID)
		assert.Equal(t, "100.5", products[0].BaseUnitPrice.String())
		assert.Equal(t, int64(3), products[1].ID)
	})

	t.Run("empty id list", func(t *testing.T) {
		products, err := repo.GetByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("equivalency links found from either side", func(t *testing.T) {
		forA, err := repo.GetEquivalencyLinks(ctx, []int64{1})
		require.NoError(t, err)
		forB, err := repo.GetEquivalencyLinks(ctx, []int64{2})
		require.NoError(t, err)
		require.Len(t, forA, 1)
		assert.Equal(t, forA, forB)
		assert.Equal(t, int64(1), forA[0].ProductAID)
		assert.Equal(t, int64(2), forA[0].ProductBID)
	})

	t.Run("media links ordered with paths joined", func(t *testing.T) {
		links, err := repo.GetMediaLinks(ctx, []int64{1})
		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, int64(1), links[0].MediaID)
		require.NotNil(t, links[0].MediaFilepath)
		assert.Equal(t, "media/pump.png", *links[0].MediaFilepath)
		require.NotNil(t, links[0].ThumbnailPath)
		assert.Equal(t, "media/pump_thumb.png", *links[0].ThumbnailPath)
		assert.Nil(t, links[1].ThumbnailPath)
	})

	t.Run("get with media", func(t *testing.T) {
		prod, media, err := repo.GetByIDWithMedia(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Pump", prod.Name)
		assert.Len(t, media, 2)

		_, _, err = repo.GetByIDWithMedia(ctx, 99)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestProjectRepo(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	exec(t, db, `INSERT INTO clients (id, name, project_identifier) VALUES (1, 'Globex', 'PRJ-1')`)
	exec(t, db, `INSERT INTO statuses (id, name) VALUES (1, 'In Progress')`)
	exec(t, db, `INSERT INTO projects (id, client_id, name, status_id, budget, start_date) VALUES
		(1, 1, 'Factory Line', 1, '50000', '2026-01-15'),
		(2, 1, 'Side Job', NULL, NULL, NULL)`)

	t.Run("status name joined", func(t *testing.T) {
		project, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Factory Line", project.Name)
		require.NotNil(t, project.StatusName)
		assert.Equal(t, "In Progress", *project.StatusName)
		require.True(t, project.Budget.Valid)
		assert.Equal(t, "50000", project.Budget.Decimal.String())
		require.NotNil(t, project.StartDate)
		assert.Equal(t, "2026-01-15", *project.StartDate)
	})

	t.Run("missing status stays nil", func(t *testing.T) {
		project, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, project.StatusName)
		assert.False(t, project.Budget.Valid)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 99)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestOrderRepo(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepo(db)
	ctx := context.Background()

	exec(t, db, `INSERT INTO clients (id, name, project_identifier) VALUES (1, 'Globex', 'PRJ-1')`)
	exec(t, db, `INSERT INTO projects (id, client_id, name) VALUES (1, 1, 'Factory Line')`)
	exec(t, db, `INSERT INTO products (id, name, base_unit_price) VALUES (1, 'Pump', '100')`)
	exec(t, db, `INSERT INTO client_project_products
		(id, client_id, project_id, product_id, quantity, unit_price_override, serial_number) VALUES
		(1, 1, 1,    1, 2,   '95.50', 'SN-001'),
		(2, 1, NULL, 1, 1.5, NULL,    NULL)`)

	t.Run("get by id", func(t *testing.T) {
		line, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2.0, line.Quantity)
		require.True(t, line.UnitPriceOverride.Valid)
		assert.Equal(t, "95.5", line.UnitPriceOverride.Decimal.String())
		require.NotNil(t, line.SerialNumber)
		assert.Equal(t, "SN-001", *line.SerialNumber)

		_, err = repo.GetByID(ctx, 99)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("list for client", func(t *testing.T) {
		lines, err := repo.ListForClientOrProject(ctx, 1, nil)
		require.NoError(t, err)
		assert.Len(t, lines, 2)
	})

	t.Run("list narrowed to project", func(t *testing.T) {
		projectID := int64(1)
		lines, err := repo.ListForClientOrProject(ctx, 1, &projectID)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, int64(1), lines[0].ID)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		lines, err := repo.ListForClientOrProject(ctx, 99, nil)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestNoteRepo(t *testing.T) {
	db := openTestDB(t)
	repo := NewNoteRepo(db)
	ctx := context.Background()

	exec(t, db, `INSERT INTO clients (id, name, project_identifier) VALUES (1, 'Globex', 'PRJ-1')`)
	exec(t, db, `INSERT INTO client_document_notes
		(client_id, document_type, language_code, note_content, is_active) VALUES
		(1, 'proforma', 'en', 'Pay within 30 days.', 1),
		(1, 'proforma', 'fr', 'Ancienne note.', 0)`)

	t.Run("exact key match", func(t *testing.T) {
		note, err := repo.GetActiveNote(ctx, 1, "proforma", "en")
		require.NoError(t, err)
		assert.Equal(t, "Pay within 30 days.", note.NoteContent)
		assert.True(t, note.IsActive)
	})

	t.Run("inactive note is not returned", func(t *testing.T) {
		_, err := repo.GetActiveNote(ctx, 1, "proforma", "fr")
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("language is part of the key", func(t *testing.T) {
		_, err := repo.GetActiveNote(ctx, 1, "proforma", "tr")
		assert.True(t, apperror.IsNotFound(err))
	})
}
