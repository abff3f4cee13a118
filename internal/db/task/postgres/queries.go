package postgres

const insertQuery = `
INSERT INTO task (name, users_tgteg, date_end, time_end, prpgress, schedulecol)
VALUES ($1, $2, $3, $4, $5, $6);
`

const selectAllQuery = `
SELECT name, users_tgteg, date_end, time_end, prpgress, schedulecol
FROM task;
`

const selectByOwnerQuery = `
SELECT name, users_tgteg, date_end, time_end, prpgress, schedulecol
FROM task
WHERE users_tgteg = $1;
`

// updateFieldQuery is completed with a column name from the whitelist below.
const updateFieldQuery = `
UPDATE task
SET %s = $1
WHERE name = $2 AND users_tgteg = $3;
`

const deleteQuery = `
DELETE FROM task
WHERE name = $1 AND users_tgteg = $2;
`
