package sqlite

import "fmt"

// schema DDL inicial. Timestamps en milisegundos Unix (INTEGER); importes en
// columnas NUMERIC que guardan el valor decimal exacto.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		created_at INTEGER NOT NULL,
		last_login INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_name TEXT UNIQUE NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0,
		threshold INTEGER NOT NULL DEFAULT 0,
		cost_price NUMERIC NOT NULL DEFAULT 0,
		sale_price NUMERIC NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		image_path TEXT NOT NULL DEFAULT '',
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		receipt_id TEXT NOT NULL,
		sale_date INTEGER NOT NULL,
		item_name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		sale_price NUMERIC NOT NULL,
		total_amount NUMERIC NOT NULL,
		username TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		emp_number TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		joining_date TEXT NOT NULL DEFAULT '',
		designation TEXT NOT NULL DEFAULT '',
		manager TEXT NOT NULL DEFAULT '',
		team TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		emergency_contact TEXT NOT NULL DEFAULT '',
		photo_path TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employee_reviews (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL REFERENCES employees(id),
		review_date TEXT NOT NULL DEFAULT '',
		rating TEXT NOT NULL DEFAULT '',
		comments TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL REFERENCES employees(id),
		goal TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Not Started',
		due_date TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payrolls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL REFERENCES employees(id),
		period_start TEXT NOT NULL DEFAULT '',
		period_end TEXT NOT NULL DEFAULT '',
		base_salary NUMERIC NOT NULL DEFAULT 0,
		allowances NUMERIC NOT NULL DEFAULT 0,
		deductions NUMERIC NOT NULL DEFAULT 0,
		overtime_hours NUMERIC NOT NULL DEFAULT 0,
		overtime_rate NUMERIC NOT NULL DEFAULT 0,
		gross_pay NUMERIC NOT NULL DEFAULT 0,
		net_pay NUMERIC NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'Draft',
		paid_date TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS appraisal_cycles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL REFERENCES employees(id),
		period_start TEXT NOT NULL DEFAULT '',
		period_end TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Draft',
		self_text TEXT NOT NULL DEFAULT '',
		self_rating REAL NOT NULL DEFAULT 0,
		manager_text TEXT NOT NULL DEFAULT '',
		manager_rating REAL NOT NULL DEFAULT 0,
		final_rating REAL NOT NULL DEFAULT 0,
		created_by TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS feedback_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		appraisal_id INTEGER REFERENCES appraisal_cycles(id),
		requester TEXT NOT NULL DEFAULT '',
		target_employee_id INTEGER NOT NULL REFERENCES employees(id),
		message TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Requested',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS feedback_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		appraisal_id INTEGER REFERENCES appraisal_cycles(id),
		from_employee_id INTEGER REFERENCES employees(id),
		to_employee_id INTEGER NOT NULL REFERENCES employees(id),
		rating REAL NOT NULL DEFAULT 0,
		feedback_text TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS email_config (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		smtp_server TEXT NOT NULL DEFAULT '',
		smtp_port INTEGER NOT NULL DEFAULT 587,
		sender_email TEXT NOT NULL DEFAULT '',
		sender_password TEXT NOT NULL DEFAULT '',
		recipient_email TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS company_info (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		company_name TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		tax_id TEXT NOT NULL DEFAULT '',
		bank_details TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS activity_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp INTEGER NOT NULL,
		username TEXT NOT NULL,
		action TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		contact_name TEXT NOT NULL DEFAULT '',
		contact_email TEXT NOT NULL DEFAULT '',
		contact_phone TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		stage TEXT NOT NULL DEFAULT 'New',
		value NUMERIC NOT NULL DEFAULT 0,
		source TEXT NOT NULL DEFAULT '',
		assigned_to TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active',
		notes TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '[]',
		score REAL NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(sale_date)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_user ON activity_log(username)`,
	`CREATE INDEX IF NOT EXISTS idx_payrolls_employee ON payrolls(employee_id)`,
}

// additiveColumns columnas agregadas después del primer esquema publicado.
// La migración solo agrega con defaults seguros; nunca elimina ni renombra.
var additiveColumns = map[string]map[string]string{
	"inventory": {
		"image_path": `TEXT NOT NULL DEFAULT ''`,
	},
	"employees": {
		"emp_number":        `TEXT NOT NULL DEFAULT ''`,
		"emergency_contact": `TEXT NOT NULL DEFAULT ''`,
		"photo_path":        `TEXT NOT NULL DEFAULT ''`,
		"is_active":         `INTEGER NOT NULL DEFAULT 1`,
	},
	"sales": {
		"receipt_id": `TEXT NOT NULL DEFAULT ''`,
	},
	"leads": {
		"score": `REAL NOT NULL DEFAULT 0`,
	},
}

// migrate crea las tablas ausentes y aplica las columnas aditivas a archivos
// con esquemas anteriores.
func (s *Store) migrate() error {
	for _, ddl := range schema {
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("exec schema: %w", err)
		}
	}
	for table, cols := range additiveColumns {
		existing, err := s.tableColumns(table)
		if err != nil {
			return err
		}
		for col, ddl := range cols {
			if _, ok := existing[col]; ok {
				continue
			}
			alter := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, col, ddl)
			if _, err := s.db.Exec(alter); err != nil {
				return fmt.Errorf("add column %s.%s: %w", table, col, err)
			}
			s.log.Info().Str("table", table).Str("column", col).Msg("columna agregada por migración aditiva")
		}
	}
	return nil
}

// tableColumns devuelve el conjunto de columnas existentes de una tabla.
func (s *Store) tableColumns(table string) (map[string]struct{}, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	cols := make(map[string]struct{})
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notnull    int
			dflt       any
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &notnull, &dflt, &primaryKey); err != nil {
			return nil, fmt.Errorf("scan table_info %s: %w", table, err)
		}
		cols[name] = struct{}{}
	}
	return cols, rows.Err()
}
