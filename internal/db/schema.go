package db

import "github.com/example/core2/internal/db/driver"

// SchemaSQLite is the authoritative SQLite schema. Tests load it through
// SchemaFor so repository code and test fixtures cannot drift apart.
//
// Foreign keys are RESTRICT unless stated: deleting a project, epic or story
// that still has children fails in the store. Test logs follow their story and
// lose their task reference when the task goes.
const SchemaSQLite = `
CREATE TABLE IF NOT EXISTS domain (
	id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	name TEXT NOT NULL,
	code TEXT,
	color TEXT,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_domain_owner ON domain(owner_id);

CREATE TABLE IF NOT EXISTS project (
	id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	domain_id TEXT REFERENCES domain(id) ON DELETE SET NULL,
	name TEXT NOT NULL,
	type TEXT NOT NULL CHECK (type IN ('NEW', 'EXISTING')),
	status TEXT NOT NULL DEFAULT 'INTEL' CHECK (status IN ('INTEL', 'DESIGN', 'EXECUTION', 'TEST', 'PAUSED', 'ARCHIVED')),
	active BOOLEAN NOT NULL DEFAULT 1,
	drive_folder_url TEXT,
	primary_doc_url TEXT,
	pause_condition TEXT,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_project_owner ON project(owner_id);

CREATE TABLE IF NOT EXISTS analysis_document (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL REFERENCES project(id),
	pain TEXT,
	knowledge TEXT,
	context TEXT,
	legacy_notes TEXT,
	scope_in TEXT,
	scope_out TEXT,
	is_done BOOLEAN NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS uq_analysis_document_project ON analysis_document(project_id);

CREATE TABLE IF NOT EXISTS epic (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL REFERENCES project(id),
	title TEXT NOT NULL,
	description TEXT,
	order_no INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_epic_project ON epic(project_id);

CREATE TABLE IF NOT EXISTS story (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL REFERENCES project(id),
	epic_id TEXT REFERENCES epic(id),
	title TEXT NOT NULL,
	user_story TEXT NOT NULL,
	acceptance_criteria TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'START' CHECK (status IN ('START', 'IN_PROGRESS', 'DONE', 'TESTED')),
	priority INTEGER NOT NULL CHECK (priority BETWEEN 1 AND 5),
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_story_project ON story(project_id);
CREATE INDEX IF NOT EXISTS idx_story_epic ON story(epic_id);

CREATE TABLE IF NOT EXISTS task (
	id TEXT PRIMARY KEY,
	story_id TEXT NOT NULL REFERENCES story(id),
	title TEXT NOT NULL,
	note TEXT,
	status TEXT NOT NULL DEFAULT 'ICEBOX' CHECK (status IN ('ICEBOX', 'IN_PROGRESS', 'DISCUSSION', 'DONE')),
	start_at TIMESTAMP,
	end_at TIMESTAMP,
	order_no INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_task_story ON task(story_id);

CREATE TABLE IF NOT EXISTS daily_task (
	id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	title TEXT NOT NULL,
	notes TEXT,
	start_at TIMESTAMP NOT NULL,
	end_at TIMESTAMP NOT NULL,
	kind TEXT NOT NULL DEFAULT 'OTHER' CHECK (kind IN ('MEETING', 'PERSONAL', 'HEALTH', 'FOCUS', 'OTHER')),
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_daily_task_owner_start ON daily_task(owner_id, start_at);

CREATE TABLE IF NOT EXISTS test_log (
	id TEXT PRIMARY KEY,
	story_id TEXT NOT NULL REFERENCES story(id) ON DELETE CASCADE,
	task_id TEXT REFERENCES task(id) ON DELETE SET NULL,
	notes TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_test_log_story ON test_log(story_id);
`

// SchemaPostgres mirrors SchemaSQLite with Postgres column types.
const SchemaPostgres = `
CREATE TABLE IF NOT EXISTS domain (
	id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	name TEXT NOT NULL,
	code TEXT,
	color TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_domain_owner ON domain(owner_id);

CREATE TABLE IF NOT EXISTS project (
	id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	domain_id TEXT REFERENCES domain(id) ON DELETE SET NULL,
	name TEXT NOT NULL,
	type TEXT NOT NULL CHECK (type IN ('NEW', 'EXISTING')),
	status TEXT NOT NULL DEFAULT 'INTEL' CHECK (status IN ('INTEL', 'DESIGN', 'EXECUTION', 'TEST', 'PAUSED', 'ARCHIVED')),
	active BOOLEAN NOT NULL DEFAULT TRUE,
	drive_folder_url TEXT,
	primary_doc_url TEXT,
	pause_condition TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_project_owner ON project(owner_id);

CREATE TABLE IF NOT EXISTS analysis_document (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL REFERENCES project(id),
	pain TEXT,
	knowledge TEXT,
	context TEXT,
	legacy_notes TEXT,
	scope_in TEXT,
	scope_out TEXT,
	is_done BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS uq_analysis_document_project ON analysis_document(project_id);

CREATE TABLE IF NOT EXISTS epic (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL REFERENCES project(id),
	title TEXT NOT NULL,
	description TEXT,
	order_no INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_epic_project ON epic(project_id);

CREATE TABLE IF NOT EXISTS story (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL REFERENCES project(id),
	epic_id TEXT REFERENCES epic(id),
	title TEXT NOT NULL,
	user_story TEXT NOT NULL,
	acceptance_criteria TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'START' CHECK (status IN ('START', 'IN_PROGRESS', 'DONE', 'TESTED')),
	priority INTEGER NOT NULL CHECK (priority BETWEEN 1 AND 5),
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_story_project ON story(project_id);
CREATE INDEX IF NOT EXISTS idx_story_epic ON story(epic_id);

CREATE TABLE IF NOT EXISTS task (
	id TEXT PRIMARY KEY,
	story_id TEXT NOT NULL REFERENCES story(id),
	title TEXT NOT NULL,
	note TEXT,
	status TEXT NOT NULL DEFAULT 'ICEBOX' CHECK (status IN ('ICEBOX', 'IN_PROGRESS', 'DISCUSSION', 'DONE')),
	start_at TIMESTAMPTZ,
	end_at TIMESTAMPTZ,
	order_no INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_task_story ON task(story_id);

CREATE TABLE IF NOT EXISTS daily_task (
	id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	title TEXT NOT NULL,
	notes TEXT,
	start_at TIMESTAMPTZ NOT NULL,
	end_at TIMESTAMPTZ NOT NULL,
	kind TEXT NOT NULL DEFAULT 'OTHER' CHECK (kind IN ('MEETING', 'PERSONAL', 'HEALTH', 'FOCUS', 'OTHER')),
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_daily_task_owner_start ON daily_task(owner_id, start_at);

CREATE TABLE IF NOT EXISTS test_log (
	id TEXT PRIMARY KEY,
	story_id TEXT NOT NULL REFERENCES story(id) ON DELETE CASCADE,
	task_id TEXT REFERENCES task(id) ON DELETE SET NULL,
	notes TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_test_log_story ON test_log(story_id);
`

// SchemaFor returns the schema for the dialect.
func SchemaFor(dialect driver.Dialect) string {
	if dialect == driver.DialectPostgres {
		return SchemaPostgres
	}
	return SchemaSQLite
}
