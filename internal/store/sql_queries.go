package store

// The provider and insurer directories are two tables with an identical
// shape, so every directory query is a format template taking the table
// name. Table names come from the two fixed constructors, never from user
// input.
const (
	directoryColumns = `id, name, type, addr, city, state, zip, phone, fax, email, notes, created_at, updated_at`

	// upsertDirectoryRecord is the atomic insert-or-update-by-name
	// statement. The conflict target is the unique expression index over
	// LOWER(BTRIM(name)), so two concurrent upserts of the same folded
	// name can never produce two rows.
	upsertDirectoryRecord = `INSERT INTO %s (name, type, addr, city, state, zip, phone, fax, email, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (LOWER(BTRIM(name))) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			addr = EXCLUDED.addr,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			zip = EXCLUDED.zip,
			phone = EXCLUDED.phone,
			fax = EXCLUDED.fax,
			email = EXCLUDED.email,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING ` + directoryColumns + `;`

	// searchDirectoryRecords matches a case-insensitive substring of name.
	// The pattern argument is pre-escaped with escapeLike.
	searchDirectoryRecords = `SELECT ` + directoryColumns + `
		FROM %s
		WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY name
		LIMIT $2;`

	listDirectoryRecords = `SELECT ` + directoryColumns + `
		FROM %s
		ORDER BY name;`

	getDirectoryRecord = `SELECT ` + directoryColumns + `
		FROM %s
		WHERE id = $1;`

	deleteDirectoryRecord = `DELETE FROM %s
		WHERE id = $1;`

	getCase = `SELECT aggregate
		FROM cases
		WHERE case_id = $1;`

	// replaceCase stores the fully-formed next aggregate state. The core
	// always hands over a complete case, so insert and update are the same
	// write.
	replaceCase = `INSERT INTO cases (case_id, aggregate)
		VALUES ($1, $2)
		ON CONFLICT (case_id) DO UPDATE SET
			aggregate = EXCLUDED.aggregate,
			updated_at = NOW();`

	deleteCase = `DELETE FROM cases
		WHERE case_id = $1;`
)
