package duckdb

const archiveSchema = `
CREATE TABLE IF NOT EXISTS sessions (
    session_id   VARCHAR PRIMARY KEY,
    source       VARCHAR NOT NULL,
    protocol     VARCHAR,
    ingested_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS commands (
    session_id  VARCHAR NOT NULL,
    position    INTEGER NOT NULL,
    name        VARCHAR NOT NULL,
    response    VARCHAR
);
CREATE INDEX IF NOT EXISTS idx_commands_session ON commands(session_id);

CREATE TABLE IF NOT EXISTS responses (
    session_id  VARCHAR NOT NULL,
    position    INTEGER NOT NULL,
    request     VARCHAR NOT NULL,
    response    VARCHAR NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_responses_request ON responses(request);
`
