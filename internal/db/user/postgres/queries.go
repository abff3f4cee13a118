package postgres

const insertQuery = `
INSERT INTO users (tgteg, name, userscol)
VALUES ($1, $2, $3);
`

const ensureQuery = `
INSERT INTO users (tgteg, name, userscol)
VALUES ($1, $2, $3)
ON CONFLICT (tgteg) DO NOTHING;
`

const selectAllQuery = `
SELECT tgteg, name, userscol
FROM users;
`

const selectByHandleQuery = `
SELECT tgteg, name, userscol
FROM users
WHERE tgteg = $1;
`

const deleteQuery = `
DELETE FROM users
WHERE tgteg = $1;
`
