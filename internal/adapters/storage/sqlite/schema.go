package sqlite

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL CHECK(role IN ('admin','registrar','user')),
	created_at    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS animals (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	species     TEXT NOT NULL,
	sex         TEXT NOT NULL DEFAULT '',
	age         TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL CHECK(status IN ('draft','pending','published','adopted')) DEFAULT 'draft',
	foster_type TEXT NOT NULL DEFAULT 'family',
	description TEXT NOT NULL DEFAULT '',
	location    TEXT NOT NULL DEFAULT '',
	created_by  TEXT NOT NULL REFERENCES users(id),
	created_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS health_records (
	id         TEXT PRIMARY KEY,
	animal_id  TEXT NOT NULL REFERENCES animals(id),
	vaccinated INTEGER NOT NULL DEFAULT 0,
	neutered   INTEGER NOT NULL DEFAULT 0,
	dewormed   INTEGER NOT NULL DEFAULT 0,
	notes      TEXT NOT NULL DEFAULT '',
	updated_by TEXT NOT NULL REFERENCES users(id),
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS adoption_applications (
	id          TEXT PRIMARY KEY,
	animal_id   TEXT NOT NULL REFERENCES animals(id),
	user_id     TEXT NOT NULL REFERENCES users(id),
	contact     TEXT NOT NULL,
	reason      TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL CHECK(status IN ('submitted','approved','rejected')) DEFAULT 'submitted',
	reviewed_by TEXT REFERENCES users(id),
	created_at  TIMESTAMP NOT NULL,
	reviewed_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS orders (
	id           TEXT PRIMARY KEY,
	user_id      TEXT NOT NULL REFERENCES users(id),
	service_type TEXT NOT NULL,
	product_name TEXT NOT NULL,
	amount       REAL NOT NULL,
	created_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS revenue_records (
	id           TEXT PRIMARY KEY,
	order_id     TEXT NOT NULL REFERENCES orders(id),
	revenue_type TEXT NOT NULL,
	amount       REAL NOT NULL,
	created_at   TIMESTAMP NOT NULL
);
`
