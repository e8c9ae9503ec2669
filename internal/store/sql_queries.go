package store

const (
	selectAllSettings = `SELECT name, value FROM settings;`

	upsertSetting = `INSERT INTO settings (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value;`

	selectAttribute = `SELECT value FROM attributes
		WHERE entity = ? AND entity_id = ? AND key = ?;`

	upsertAttribute = `INSERT INTO attributes (entity, entity_id, key, value) VALUES (?, ?, ?, ?)
		ON CONFLICT(entity, entity_id, key) DO UPDATE SET value = excluded.value;`

	deleteAttribute = `DELETE FROM attributes
		WHERE entity = ? AND entity_id = ? AND key = ?;`
)
