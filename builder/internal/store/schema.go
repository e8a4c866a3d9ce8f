// CLAUDE:SUMMARY SQLite schema for the builder store — projects, pages, elements, audit log.
package store

// Schema is applied on every open; all statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS projects (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS pages (
	id         TEXT PRIMARY KEY,
	project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	slug       TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL,
	UNIQUE (project_id, slug)
);
CREATE INDEX IF NOT EXISTS idx_pages_project ON pages(project_id);

CREATE TABLE IF NOT EXISTS elements (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	page_id      TEXT NOT NULL REFERENCES pages(id) ON DELETE CASCADE,
	parent_id    INTEGER REFERENCES elements(id) ON DELETE CASCADE,
	element_type TEXT NOT NULL,
	content      TEXT NOT NULL DEFAULT '',
	styles       TEXT NOT NULL DEFAULT '{}',
	attributes   TEXT NOT NULL DEFAULT '{}',
	position     INTEGER NOT NULL DEFAULT 0,
	created_at   INTEGER NOT NULL,
	updated_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_elements_page ON elements(page_id, position);

CREATE TABLE IF NOT EXISTS audit_log (
	id         TEXT PRIMARY KEY,
	ts         INTEGER NOT NULL,
	action     TEXT NOT NULL,
	project_id TEXT NOT NULL DEFAULT '',
	page_id    TEXT NOT NULL DEFAULT '',
	detail     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_audit_ts ON audit_log(ts);
`
