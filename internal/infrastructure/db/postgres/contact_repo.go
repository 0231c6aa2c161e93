package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mgeraldo/contact-book/internal/application/contacts"
	"github.com/mgeraldo/contact-book/internal/domain"
)

// ContactRepo persists contacts. Every statement that reads or mutates an
// existing row carries `owner_id = $n` next to the id predicate, so a row
// owned by another user is indistinguishable from an absent one.
type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

const contactColumns = "id, owner_id, name, email, phone, created_at, updated_at"

func scanContact(row *sql.Row) (domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *ContactRepo) Create(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	if c.ID == "" {
		return domain.Contact{}, domain.ErrMissingField("id")
	}
	if c.OwnerID == "" {
		return domain.Contact{}, domain.ErrMissingField("owner_id")
	}

	const q = `
INSERT INTO contacts (id, owner_id, name, email, phone)
VALUES ($1,$2,$3,$4,$5)
RETURNING ` + contactColumns + `;
`
	out, err := scanContact(r.db.QueryRowContext(ctx, q,
		c.ID, c.OwnerID, c.Name, c.Email, c.Phone,
	))
	if err != nil {
		return domain.Contact{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

// likeEscaper neutralizes ILIKE wildcards so filter terms match literally.
// Postgres treats backslash as the escape character when no ESCAPE clause
// is given.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *ContactRepo) List(ctx context.Context, ownerID string, f contacts.Filter) ([]domain.Contact, error) {
	where := "WHERE owner_id = $1"
	args := []any{ownerID}
	argN := 2

	if s := strings.TrimSpace(f.Name); s != "" {
		where += fmt.Sprintf(" AND name ILIKE '%%' || $%d || '%%'", argN)
		args = append(args, likeEscaper.Replace(s))
		argN++
	}
	if s := strings.TrimSpace(f.Email); s != "" {
		where += fmt.Sprintf(" AND email ILIKE '%%' || $%d || '%%'", argN)
		args = append(args, likeEscaper.Replace(s))
		argN++
	}

	q := fmt.Sprintf(`
SELECT %s
FROM contacts
%s
ORDER BY created_at, id
`, contactColumns, where)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(
			&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *ContactRepo) GetByID(ctx context.Context, id, ownerID string) (domain.Contact, error) {
	const q = `
SELECT ` + contactColumns + `
FROM contacts
WHERE id = $1 AND owner_id = $2
LIMIT 1;
`
	c, err := scanContact(r.db.QueryRowContext(ctx, q, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Contact{}, domain.ErrContactNotFound()
		}
		return domain.Contact{}, domain.ErrDBUnavailable(err)
	}
	return c, nil
}

// Replace overwrites the client-writable columns. owner_id and created_at
// stay untouched; the incoming contact's owner is not part of the SET list.
func (r *ContactRepo) Replace(ctx context.Context, id, ownerID string, c domain.Contact) (domain.Contact, error) {
	const q = `
UPDATE contacts
SET name = $3,
    email = $4,
    phone = $5,
    updated_at = NOW()
WHERE id = $1 AND owner_id = $2
RETURNING ` + contactColumns + `;
`
	out, err := scanContact(r.db.QueryRowContext(ctx, q, id, ownerID, c.Name, c.Email, c.Phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Contact{}, domain.ErrContactNotFound()
		}
		return domain.Contact{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *ContactRepo) Update(ctx context.Context, id, ownerID string, p contacts.Patch) (domain.Contact, error) {
	if p.IsZero() {
		return r.GetByID(ctx, id, ownerID)
	}

	set := []string{"updated_at = NOW()"}
	args := []any{id, ownerID}
	argN := 3

	if p.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", argN))
		args = append(args, *p.Name)
		argN++
	}
	if p.Email != nil {
		set = append(set, fmt.Sprintf("email = $%d", argN))
		args = append(args, *p.Email)
		argN++
	}
	if p.Phone != nil {
		set = append(set, fmt.Sprintf("phone = $%d", argN))
		args = append(args, *p.Phone)
		argN++
	}

	q := fmt.Sprintf(`
UPDATE contacts
SET %s
WHERE id = $1 AND owner_id = $2
RETURNING %s;
`, strings.Join(set, ", "), contactColumns)

	c, err := scanContact(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Contact{}, domain.ErrContactNotFound()
		}
		return domain.Contact{}, domain.ErrDBUnavailable(err)
	}
	return c, nil
}

func (r *ContactRepo) Delete(ctx context.Context, id, ownerID string) (domain.Contact, error) {
	const q = `
DELETE FROM contacts
WHERE id = $1 AND owner_id = $2
RETURNING ` + contactColumns + `;
`
	c, err := scanContact(r.db.QueryRowContext(ctx, q, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Contact{}, domain.ErrContactNotFound()
		}
		return domain.Contact{}, domain.ErrDBUnavailable(err)
	}
	return c, nil
}
