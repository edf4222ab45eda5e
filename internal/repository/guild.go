package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/forgo/muster/internal/database"
	"github.com/forgo/muster/internal/model"
)

// GuildRepository handles guild record data access. A guild is persisted as a
// single document (metadata plus the full nested group sequence) keyed by the
// external guild identifier, and every write replaces the whole document.
type GuildRepository struct {
	db database.Database
}

// NewGuildRepository creates a new guild repository
func NewGuildRepository(db database.Database) *GuildRepository {
	return &GuildRepository{db: db}
}

// Get retrieves the stored record for a guild. It returns (nil, nil) when no
// record exists; absence is not an error.
func (r *GuildRepository) Get(ctx context.Context, guildID string) (*model.GuildRecord, error) {
	query := `SELECT * FROM type::thing('guild', $id)`
	vars := map[string]interface{}{"id": guildID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	record, err := parseGuildRecord(guildID, result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// Upsert writes the entire guild record, replacing any stored document for
// the same guild identifier.
func (r *GuildRepository) Upsert(ctx context.Context, record *model.GuildRecord) error {
	content, err := guildContent(record)
	if err != nil {
		return err
	}

	query := `UPSERT type::thing('guild', $id) CONTENT $content`
	vars := map[string]interface{}{
		"id":      record.ID,
		"content": content,
	}

	return r.db.Execute(ctx, query, vars)
}

// guildContent converts a guild record into the document body stored under
// the record ID. The external guild identifier lives in the record ID, not in
// the body.
func guildContent(record *model.GuildRecord) (map[string]interface{}, error) {
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	var content map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &content); err != nil {
		return nil, err
	}
	delete(content, "_id")
	return content, nil
}

// parseGuildRecord converts a query result into a guild record. The record ID
// returned by the store is discarded in favor of the external guild
// identifier the caller queried with.
func parseGuildRecord(guildID string, result interface{}) (*model.GuildRecord, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through the response structure
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result format", database.ErrQuery)
	}
	delete(data, "id")

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var record model.GuildRecord
	if err := json.Unmarshal(jsonBytes, &record); err != nil {
		return nil, err
	}

	record.ID = guildID
	if record.CreateRoles == nil {
		record.CreateRoles = []string{}
	}
	if record.Groups == nil {
		record.Groups = []*model.Group{}
	}
	for _, g := range record.Groups {
		if g.Members == nil {
			g.Members = []string{}
		}
	}
	record.AttachGroups()
	return &record, nil
}
