package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventgroups/internal/models"
	"eventgroups/internal/storage"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

const schema = `
	CREATE TABLE IF NOT EXISTS events (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		date_time  TIMESTAMPTZ NOT NULL,
		group_size_limit BIGINT NOT NULL CHECK (group_size_limit >= 0),
		location   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS groups (
		id            BIGSERIAL PRIMARY KEY,
		event_id      TEXT NOT NULL REFERENCES events (id),
		creator_name  TEXT NOT NULL,
		creator_email TEXT NOT NULL,
		group_name    TEXT NOT NULL,
		accepts_others BOOLEAN NOT NULL,
		project_description TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS group_members (
		id       BIGSERIAL PRIMARY KEY,
		group_id BIGINT NOT NULL REFERENCES groups (id),
		name     TEXT NOT NULL,
		email    TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_groups_event_id ON groups (event_id);
	CREATE INDEX IF NOT EXISTS idx_group_members_group_id ON group_members (group_id);`

func InitDB(databaseURL string) (*Storage, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	db.SetMaxOpenConns(10)

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// queryer is satisfied by both *sql.DB and *sql.Tx, so the lookup
// helpers below run on the pool for plain reads and on the transaction
// for checks that gate a write.
type queryer interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

func eventExists(q queryer, id string) (bool, error) {
	var exists bool
	err := q.QueryRow(`SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check event existence: %w", err)
	}

	return exists, nil
}

func groupExists(q queryer, id int64) (bool, error) {
	var exists bool
	err := q.QueryRow(`SELECT EXISTS(SELECT 1 FROM groups WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check group existence: %w", err)
	}

	return exists, nil
}

func getGroup(q queryer, id int64) (*models.Group, error) {
	query := `
		SELECT id, event_id, creator_name, creator_email, group_name, accepts_others, project_description, created_at
		FROM groups
		WHERE id = $1`

	var group models.Group
	err := q.QueryRow(query, id).Scan(
		&group.ID,
		&group.EventID,
		&group.CreatorName,
		&group.CreatorEmail,
		&group.GroupName,
		&group.AcceptsOthers,
		&group.ProjectDescription,
		&group.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return &group, nil
}

func (s *Storage) CreateEvent(name string, dateTime time.Time, groupSizeLimit int64, location string) (*models.Event, error) {
	query := `
		INSERT INTO events (id, name, date_time, group_size_limit, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, date_time, group_size_limit, location, created_at`

	var event models.Event
	err := s.DB.QueryRow(query, uuid.New().String(), name, dateTime, groupSizeLimit, location).Scan(
		&event.ID,
		&event.Name,
		&event.DateTime,
		&event.GroupSizeLimit,
		&event.Location,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &event, nil
}

func (s *Storage) ListEvents(limit, offset int) ([]models.Event, error) {
	query := `
		SELECT id, name, date_time, group_size_limit, location, created_at
		FROM events
		ORDER BY date_time DESC
		LIMIT $1 OFFSET $2`

	rows, err := s.DB.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Name,
			&event.DateTime,
			&event.GroupSizeLimit,
			&event.Location,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// GetEventWithGroups returns the event and its groups, newest group
// first. Members are not loaded here.
func (s *Storage) GetEventWithGroups(id string) (*models.Event, []models.Group, error) {
	query := `
		SELECT id, name, date_time, group_size_limit, location, created_at
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Name,
		&event.DateTime,
		&event.GroupSizeLimit,
		&event.Location,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, storage.ErrEventNotFound
		}
		return nil, nil, fmt.Errorf("failed to get event: %w", err)
	}

	groups, err := listGroupsByEvent(s.DB, id)
	if err != nil {
		return nil, nil, err
	}

	return &event, groups, nil
}

func (s *Storage) UpdateEvent(id, name string, dateTime time.Time, groupSizeLimit int64, location string) (*models.Event, error) {
	query := `
		UPDATE events
		SET name = $1, date_time = $2, group_size_limit = $3, location = $4
		WHERE id = $5
		RETURNING id, name, date_time, group_size_limit, location, created_at`

	var event models.Event
	err := s.DB.QueryRow(query, name, dateTime, groupSizeLimit, location, id).Scan(
		&event.ID,
		&event.Name,
		&event.DateTime,
		&event.GroupSizeLimit,
		&event.Location,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return &event, nil
}

// DeleteEvent removes the event and cascades to its groups and their
// members inside one transaction. Children go first so the foreign
// keys never dangle.
func (s *Storage) DeleteEvent(id string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := eventExists(tx, id)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrEventNotFound
	}

	_, err = tx.Exec(`
		DELETE FROM group_members
		WHERE group_id IN (SELECT id FROM groups WHERE event_id = $1)`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group members: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM groups WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete groups: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return tx.Commit()
}

func (s *Storage) ListGroups(limit, offset int) ([]models.Group, error) {
	query := `
		SELECT id, event_id, creator_name, creator_email, group_name, accepts_others, project_description, created_at
		FROM groups
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := s.DB.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

// CreateGroup checks the event exists, inserts the group row and its
// initial members, all in one transaction. A failed member insert
// rolls back the group row too. The initial member set is not subject
// to the capacity or accepts_others gates.
func (s *Storage) CreateGroup(group models.Group, members []models.NewMember) (*models.Group, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := eventExists(tx, group.EventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, storage.ErrEventNotFound
	}

	query := `
		INSERT INTO groups (event_id, creator_name, creator_email, group_name, accepts_others, project_description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, event_id, creator_name, creator_email, group_name, accepts_others, project_description, created_at`

	var created models.Group
	err = tx.QueryRow(query,
		group.EventID,
		group.CreatorName,
		group.CreatorEmail,
		group.GroupName,
		group.AcceptsOthers,
		group.ProjectDescription,
	).Scan(
		&created.ID,
		&created.EventID,
		&created.CreatorName,
		&created.CreatorEmail,
		&created.GroupName,
		&created.AcceptsOthers,
		&created.ProjectDescription,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	for _, member := range members {
		_, err = tx.Exec(`INSERT INTO group_members (group_id, name, email) VALUES ($1, $2, $3)`,
			created.ID, member.Name, member.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to add group member: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetGroupWithMembers(id int64) (*models.Group, []models.GroupMember, error) {
	group, err := getGroup(s.DB, id)
	if err != nil {
		return nil, nil, err
	}

	members, err := listMembers(s.DB, id)
	if err != nil {
		return nil, nil, err
	}

	return group, members, nil
}

// UpdateGroup rewrites the group's mutable fields and replaces its
// whole member list in one transaction: update, delete old members,
// insert new ones in input order.
func (s *Storage) UpdateGroup(id int64, group models.Group, members []models.NewMember) (*models.Group, []models.GroupMember, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = getGroup(tx, id); err != nil {
		return nil, nil, err
	}

	query := `
		UPDATE groups
		SET creator_name = $1, creator_email = $2, group_name = $3, accepts_others = $4, project_description = $5
		WHERE id = $6
		RETURNING id, event_id, creator_name, creator_email, group_name, accepts_others, project_description, created_at`

	var updated models.Group
	err = tx.QueryRow(query,
		group.CreatorName,
		group.CreatorEmail,
		group.GroupName,
		group.AcceptsOthers,
		group.ProjectDescription,
		id,
	).Scan(
		&updated.ID,
		&updated.EventID,
		&updated.CreatorName,
		&updated.CreatorEmail,
		&updated.GroupName,
		&updated.AcceptsOthers,
		&updated.ProjectDescription,
		&updated.CreatedAt,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update group: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM group_members WHERE group_id = $1`, id); err != nil {
		return nil, nil, fmt.Errorf("failed to delete group members: %w", err)
	}

	newMembers := []models.GroupMember{}
	for _, member := range members {
		var inserted models.GroupMember
		err = tx.QueryRow(`
			INSERT INTO group_members (group_id, name, email)
			VALUES ($1, $2, $3)
			RETURNING id, group_id, name, email`,
			id, member.Name, member.Email,
		).Scan(&inserted.ID, &inserted.GroupID, &inserted.Name, &inserted.Email)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to add group member: %w", err)
		}

		newMembers = append(newMembers, inserted)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &updated, newMembers, nil
}

func (s *Storage) DeleteGroup(id int64) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := groupExists(tx, id)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrGroupNotFound
	}

	if _, err = tx.Exec(`DELETE FROM group_members WHERE group_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete group members: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM groups WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	return tx.Commit()
}

// ListEventGroups returns every group of the event with its members
// attached. Members for all groups come back from a single query and
// are partitioned by group id here, so the member load stays at one
// statement no matter how many groups the event has.
func (s *Storage) ListEventGroups(eventID string) ([]models.GroupWithMembers, error) {
	exists, err := eventExists(s.DB, eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, storage.ErrEventNotFound
	}

	groups, err := listGroupsByEvent(s.DB, eventID)
	if err != nil {
		return nil, err
	}

	result := []models.GroupWithMembers{}
	if len(groups) == 0 {
		return result, nil
	}

	query := `
		SELECT id, group_id, name, email
		FROM group_members
		WHERE group_id IN (SELECT id FROM groups WHERE event_id = $1)`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	membersByGroup := make(map[int64][]models.GroupMember)
	for rows.Next() {
		var member models.GroupMember
		err = rows.Scan(&member.ID, &member.GroupID, &member.Name, &member.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}

		membersByGroup[member.GroupID] = append(membersByGroup[member.GroupID], member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group members: %w", err)
	}

	for _, group := range groups {
		members := membersByGroup[group.ID]
		if members == nil {
			members = []models.GroupMember{}
		}

		result = append(result, models.GroupWithMembers{Group: group, Members: members})
	}

	return result, nil
}

// CreateMember inserts a member into an open group with free capacity.
// The group fetch, the accepts_others gate, the capacity count and the
// insert share one transaction, so two concurrent calls cannot both
// pass the count and overshoot the event's limit.
func (s *Storage) CreateMember(groupID int64, name string, email *string) (*models.GroupMember, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	group, err := getGroup(tx, groupID)
	if err != nil {
		return nil, err
	}

	if !group.AcceptsOthers {
		return nil, storage.ErrGroupClosed
	}

	var sizeLimit int64
	err = tx.QueryRow(`SELECT group_size_limit FROM events WHERE id = $1`, group.EventID).Scan(&sizeLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get event size limit: %w", err)
	}

	var memberCount int64
	err = tx.QueryRow(`SELECT COUNT(*) FROM group_members WHERE group_id = $1`, groupID).Scan(&memberCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count group members: %w", err)
	}

	if memberCount >= sizeLimit {
		return nil, storage.ErrGroupFull
	}

	var member models.GroupMember
	err = tx.QueryRow(`
		INSERT INTO group_members (group_id, name, email)
		VALUES ($1, $2, $3)
		RETURNING id, group_id, name, email`,
		groupID, name, email,
	).Scan(&member.ID, &member.GroupID, &member.Name, &member.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create group member: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &member, nil
}

func (s *Storage) DeleteMember(id int64) error {
	result, err := s.DB.Exec(`DELETE FROM group_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete group member: %w", err)
	}
	if affected == 0 {
		return storage.ErrMemberNotFound
	}

	return nil
}

func (s *Storage) ListGroupMembers(groupID int64) ([]models.GroupMember, error) {
	exists, err := groupExists(s.DB, groupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, storage.ErrGroupNotFound
	}

	return listMembers(s.DB, groupID)
}

func listGroupsByEvent(q queryer, eventID string) ([]models.Group, error) {
	query := `
		SELECT id, event_id, creator_name, creator_email, group_name, accepts_others, project_description, created_at
		FROM groups
		WHERE event_id = $1
		ORDER BY created_at DESC`

	rows, err := q.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

func scanGroups(rows *sql.Rows) ([]models.Group, error) {
	groups := []models.Group{}
	for rows.Next() {
		var group models.Group
		err := rows.Scan(
			&group.ID,
			&group.EventID,
			&group.CreatorName,
			&group.CreatorEmail,
			&group.GroupName,
			&group.AcceptsOthers,
			&group.ProjectDescription,
			&group.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}

		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating groups: %w", err)
	}

	return groups, nil
}

func listMembers(q queryer, groupID int64) ([]models.GroupMember, error) {
	rows, err := q.Query(`SELECT id, group_id, name, email FROM group_members WHERE group_id = $1`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	members := []models.GroupMember{}
	for rows.Next() {
		var member models.GroupMember
		err = rows.Scan(&member.ID, &member.GroupID, &member.Name, &member.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}

		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group members: %w", err)
	}

	return members, nil
}
