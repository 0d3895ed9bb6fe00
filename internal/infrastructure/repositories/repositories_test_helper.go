package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createPropertyTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE properties (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		landmark TEXT,
		price REAL NOT NULL,
		bhk INTEGER,
		bathrooms INTEGER,
		balconies INTEGER,
		area_sq_ft REAL,
		type TEXT NOT NULL,
		purpose TEXT NOT NULL,
		age_bracket TEXT NOT NULL DEFAULT 'new',
		amenities TEXT,
		images TEXT,
		pooja_room BOOLEAN,
		study_room BOOLEAN,
		servant_room BOOLEAN,
		store_room BOOLEAN,
		price_negotiable BOOLEAN,
		verification TEXT NOT NULL DEFAULT 'pending',
		verified_by TEXT,
		verified_at DATETIME,
		owner_id TEXT NOT NULL,
		owner_name TEXT NOT NULL,
		owner_phone TEXT NOT NULL,
		owner_email TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createBankingPartnerTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE banking_partners (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		code TEXT NOT NULL UNIQUE,
		contact_email TEXT NOT NULL,
		contact_phone TEXT,
		rating REAL NOT NULL,
		partnership_tier TEXT NOT NULL DEFAULT 'standard',
		partner_since DATETIME,
		preferred_value_min REAL,
		preferred_value_max REAL,
		active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE loan_products (
		id TEXT PRIMARY KEY,
		bank_id TEXT NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		interest_rate_min REAL NOT NULL,
		interest_rate_max REAL NOT NULL,
		loan_amount_min REAL,
		loan_amount_max REAL,
		tenure_min_years INTEGER NOT NULL,
		tenure_max_years INTEGER NOT NULL,
		ltv_ratio REAL NOT NULL,
		fee_percent REAL,
		fee_fixed REAL,
		fee_max REAL,
		property_types TEXT,
		min_monthly_income REAL,
		min_credit_score INTEGER,
		employment_types TEXT,
		active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE special_offers (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		label TEXT NOT NULL,
		description TEXT,
		valid_till DATETIME,
		active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE staff_profiles (
		user_id TEXT PRIMARY KEY,
		employee_code TEXT NOT NULL UNIQUE,
		department TEXT,
		appointments_handled INTEGER NOT NULL DEFAULT 0,
		properties_verified INTEGER NOT NULL DEFAULT 0,
		sales_target REAL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE saved_properties (
		user_id TEXT NOT NULL,
		property_id TEXT NOT NULL,
		created_at DATETIME,
		PRIMARY KEY (user_id, property_id)
	);`)
}

func createEnquiryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE enquiries (
		id TEXT PRIMARY KEY,
		property_id TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'new',
		handled_by TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createReviewTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reviews (
		id TEXT PRIMARY KEY,
		property_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		user_name TEXT NOT NULL,
		rating INTEGER NOT NULL,
		comment TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'visible',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAppointmentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE appointments (
		id TEXT PRIMARY KEY,
		property_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		scheduled_at DATETIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		staff_id TEXT,
		notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTitleSearchTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE title_search_requests (
		id TEXT PRIMARY KEY,
		property_address TEXT NOT NULL,
		city TEXT NOT NULL,
		survey_number TEXT,
		requester_name TEXT NOT NULL,
		requester_email TEXT NOT NULL,
		requester_phone TEXT NOT NULL,
		documents TEXT,
		status TEXT NOT NULL DEFAULT 'received',
		result_notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
