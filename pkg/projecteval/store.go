package projecteval

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ProjectRecord is a stored project row. The snapshot column holds the flat
// input snapshot as JSON, so stored projects survive engine upgrades that
// only add fields.
type ProjectRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateProject stores the project's snapshot under a fresh id.
func (c *Core) CreateProject(p *Project) (string, error) {
	id := uuid.NewString()
	snapshot, err := json.Marshal(p.Snapshot())
	if err != nil {
		return "", WrapError(ErrCodeInternal, "encode snapshot", err)
	}
	_, err = c.db.Exec(`
		INSERT INTO projects (id, name, snapshot)
		VALUES (?, ?, ?)
	`, id, p.Name, string(snapshot))
	if err != nil {
		return "", WrapError(ErrCodeDatabase, "create project", err)
	}
	return id, nil
}

// SaveProject replaces the stored snapshot for an existing project.
func (c *Core) SaveProject(id string, p *Project) error {
	snapshot, err := json.Marshal(p.Snapshot())
	if err != nil {
		return WrapError(ErrCodeInternal, "encode snapshot", err)
	}
	result, err := c.db.Exec(`
		UPDATE projects
		SET name = ?, snapshot = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, p.Name, string(snapshot), id)
	if err != nil {
		return WrapError(ErrCodeDatabase, "save project", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return WrapError(ErrCodeDatabase, "save project", err)
	}
	if rows == 0 {
		return NewError(ErrCodeNotFound, fmt.Sprintf("project %s not found", id))
	}
	return nil
}

// LoadProject restores a project from its stored snapshot.
func (c *Core) LoadProject(id string) (*Project, error) {
	var raw string
	err := c.db.QueryRow("SELECT snapshot FROM projects WHERE id = ?", id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NewError(ErrCodeNotFound, fmt.Sprintf("project %s not found", id))
	}
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "load project", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, WrapError(ErrCodeInternal, "decode snapshot", err)
	}
	return LoadProject(snapshot)
}

// ListProjects returns all stored project rows, newest first.
func (c *Core) ListProjects() ([]ProjectRecord, error) {
	rows, err := c.db.Query(`
		SELECT id, name, created_at, updated_at
		FROM projects
		ORDER BY updated_at DESC, id
	`)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "list projects", err)
	}
	defer rows.Close()

	var records []ProjectRecord
	for rows.Next() {
		var rec ProjectRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, WrapError(ErrCodeDatabase, "list projects", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, WrapError(ErrCodeDatabase, "list projects", err)
	}
	return records, nil
}

// DeleteProject removes a stored project.
func (c *Core) DeleteProject(id string) error {
	result, err := c.db.Exec("DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return WrapError(ErrCodeDatabase, "delete project", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return WrapError(ErrCodeDatabase, "delete project", err)
	}
	if rows == 0 {
		return NewError(ErrCodeNotFound, fmt.Sprintf("project %s not found", id))
	}
	return nil
}
