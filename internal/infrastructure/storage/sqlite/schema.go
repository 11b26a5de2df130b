package sqlite

// Schema is the SQL schema for the application database.
//
// Monetary columns are TEXT: decimal values round-trip without float drift.
// The equivalency pair is canonicalized on insert (a <= b); self-loops from
// legacy imports remain representable and are ignored by the resolver.
const Schema = `
CREATE TABLE IF NOT EXISTS companies (
    id                  INTEGER PRIMARY KEY,
    name                TEXT NOT NULL,
    address             TEXT,
    logo_path           TEXT,
    payment_info        TEXT,
    other_info          TEXT,
    phone               TEXT,
    email               TEXT,
    website             TEXT,
    vat_id              TEXT,
    registration_number TEXT
);

CREATE TABLE IF NOT EXISTS personnel (
    id         INTEGER PRIMARY KEY,
    company_id INTEGER NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
    name       TEXT NOT NULL,
    role       TEXT NOT NULL DEFAULT 'other',
    email      TEXT,
    phone      TEXT
);

CREATE TABLE IF NOT EXISTS countries (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS cities (
    id         INTEGER PRIMARY KEY,
    country_id INTEGER NOT NULL REFERENCES countries(id),
    name       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS clients (
    id                       INTEGER PRIMARY KEY,
    name                     TEXT NOT NULL,
    company_name             TEXT,
    project_identifier       TEXT NOT NULL DEFAULT '',
    country_id               INTEGER REFERENCES countries(id),
    city_id                  INTEGER REFERENCES cities(id),
    address                  TEXT,
    primary_need_description TEXT,
    price                    TEXT,
    notes                    TEXT,
    selected_languages       TEXT,
    category                 TEXT
);

CREATE TABLE IF NOT EXISTS contacts (
    id       INTEGER PRIMARY KEY,
    name     TEXT NOT NULL,
    email    TEXT,
    phone    TEXT,
    position TEXT
);

CREATE TABLE IF NOT EXISTS client_contacts (
    client_id             INTEGER NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
    contact_id            INTEGER NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
    is_primary_for_client INTEGER NOT NULL DEFAULT 0,
    can_receive_documents INTEGER NOT NULL DEFAULT 1,
    PRIMARY KEY (client_id, contact_id)
);

CREATE TABLE IF NOT EXISTS statuses (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
    id                  INTEGER PRIMARY KEY,
    client_id           INTEGER NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
    name                TEXT NOT NULL,
    description         TEXT,
    status_id           INTEGER REFERENCES statuses(id),
    budget              TEXT,
    manager_id          INTEGER,
    progress_percentage INTEGER,
    start_date          TEXT,
    deadline_date       TEXT
);

CREATE TABLE IF NOT EXISTS products (
    id              INTEGER PRIMARY KEY,
    name            TEXT NOT NULL,
    description     TEXT,
    category        TEXT,
    language_code   TEXT NOT NULL DEFAULT 'en',
    base_unit_price TEXT NOT NULL DEFAULT '0',
    unit_of_measure TEXT,
    weight          REAL,
    dimensions      TEXT,
    UNIQUE (name, language_code)
);

CREATE TABLE IF NOT EXISTS product_equivalencies (
    product_a_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
    product_b_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
    PRIMARY KEY (product_a_id, product_b_id),
    CHECK (product_a_id <= product_b_id)
);

CREATE TABLE IF NOT EXISTS media (
    id             INTEGER PRIMARY KEY,
    filepath       TEXT NOT NULL,
    thumbnail_path TEXT,
    title          TEXT
);

CREATE TABLE IF NOT EXISTS product_media_links (
    product_id    INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
    media_id      INTEGER NOT NULL REFERENCES media(id) ON DELETE CASCADE,
    display_order INTEGER NOT NULL DEFAULT 0,
    alt_text      TEXT,
    PRIMARY KEY (product_id, media_id)
);

CREATE TABLE IF NOT EXISTS client_project_products (
    id                     INTEGER PRIMARY KEY,
    client_id              INTEGER NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
    project_id             INTEGER REFERENCES projects(id) ON DELETE SET NULL,
    product_id             INTEGER NOT NULL REFERENCES products(id),
    quantity               REAL NOT NULL DEFAULT 1,
    unit_price_override    TEXT,
    total_price_calculated TEXT,
    serial_number          TEXT,
    purchase_confirmed_at  TEXT
);

CREATE TABLE IF NOT EXISTS client_document_notes (
    id            INTEGER PRIMARY KEY,
    client_id     INTEGER NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
    document_type TEXT NOT NULL,
    language_code TEXT NOT NULL,
    note_content  TEXT NOT NULL,
    is_active     INTEGER NOT NULL DEFAULT 1
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_active_document_note
    ON client_document_notes (client_id, document_type, language_code)
    WHERE is_active = 1;

CREATE INDEX IF NOT EXISTS idx_personnel_company ON personnel (company_id, name);
CREATE INDEX IF NOT EXISTS idx_cities_country ON cities (country_id);
CREATE INDEX IF NOT EXISTS idx_projects_client ON projects (client_id);
CREATE INDEX IF NOT EXISTS idx_cpp_client ON client_project_products (client_id);
CREATE INDEX IF NOT EXISTS idx_cpp_project ON client_project_products (project_id);
CREATE INDEX IF NOT EXISTS idx_equivalency_b ON product_equivalencies (product_b_id);
CREATE INDEX IF NOT EXISTS idx_media_links_product ON product_media_links (product_id, display_order);
`
