package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS pools (
    file_path            TEXT NOT NULL REFERENCES file_tracker(file_path) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    pool_id              TEXT NOT NULL,
    title                TEXT NOT NULL,
    description          TEXT NOT NULL,
    category             TEXT NOT NULL,
    status               TEXT NOT NULL,
    target               REAL NOT NULL,
    raised               REAL NOT NULL,
    color                TEXT,
    PRIMARY KEY (file_path, position)
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL,
    parsed_at            TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS filter_presets (
    name                 TEXT PRIMARY KEY,
    query                TEXT NOT NULL DEFAULT '',
    categories           TEXT NOT NULL DEFAULT '',
    statuses             TEXT NOT NULL DEFAULT '',
    saved_at             TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_pools_pool_id ON pools(pool_id);
`
