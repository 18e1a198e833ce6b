package repository

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// Local mobile numbers: the 08 prefix followed by 8-11 digits.
var phonePattern = regexp.MustCompile(`^08\d{8,11}$`)

// UserRepository stores console accounts. Emails are unique across the store.
type UserRepository struct {
	opts Options

	mu      sync.RWMutex
	records []models.User
	seq     sequence
}

// NewUserRepository builds a user store from the seed records.
func NewUserRepository(opts Options, seed []models.User) *UserRepository {
	r := &UserRepository{
		opts:    opts,
		records: append([]models.User(nil), seed...),
	}
	for _, u := range r.records {
		r.seq.bump(u.ID)
	}
	return r
}

// Total reports the current store size.
func (r *UserRepository) Total() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// List returns one page of users, optionally scoped to a role. Search matches
// name, email and phone number. Results are sorted by id descending.
func (r *UserRepository) List(ctx context.Context, p ListParams, role string) ([]models.User, int, error) {
	if err := r.opts.wait(ctx); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := query[models.User]{
		search: p.Search,
		fields: func(v models.User) []string { return []string{v.Name, v.Email, v.PhoneNumber} },
		less:   func(a, b models.User) bool { return a.ID > b.ID },
		params: p,
	}
	if role != "" {
		q.filters = append(q.filters, func(v models.User) bool { return v.Role == role })
	}
	items, total := runQuery(r.records, q)
	return items, total, nil
}

// Get returns a user by id.
func (r *UserRepository) Get(ctx context.Context, id int) (models.User, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.records {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, utils.NotFoundf("Pengguna dengan ID %d tidak ditemukan", id)
}

// GetByEmail returns a user by email. Used by the login flow.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.records {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, utils.NotFoundf("Pengguna dengan email %s tidak ditemukan", email)
}

// Create adds a user. Name, email, phone and role are required; the phone must
// be a local mobile number and the email must be unique.
func (r *UserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.User{}, err
	}
	if err := validateUser(u.Name, u.Email, u.PhoneNumber, u.Role); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(u.Email, 0) {
		return models.User{}, utils.Conflictf("Email %s sudah terdaftar", u.Email)
	}
	u.ID = r.seq.next()
	r.records = append(r.records, u)
	return u, nil
}

// Update applies a partial update. Email uniqueness and phone format are
// re-checked for changed fields.
func (r *UserRepository) Update(ctx context.Context, id int, upd models.UserUpdate) (models.User, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.User{}, err
	}
	if upd.PhoneNumber != nil && !phonePattern.MatchString(*upd.PhoneNumber) {
		return models.User{}, utils.Invalidf("Nomor telepon tidak valid")
	}
	if upd.Role != nil && *upd.Role != models.RoleAdmin && *upd.Role != models.RoleUser {
		return models.User{}, utils.Invalidf("Role harus admin atau user")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID != id {
			continue
		}
		if upd.Email != nil && r.emailTaken(*upd.Email, id) {
			return models.User{}, utils.Conflictf("Email %s sudah terdaftar", *upd.Email)
		}
		if upd.Name != nil {
			r.records[i].Name = *upd.Name
		}
		if upd.Email != nil {
			r.records[i].Email = *upd.Email
		}
		if upd.PhoneNumber != nil {
			r.records[i].PhoneNumber = *upd.PhoneNumber
		}
		if upd.Role != nil {
			r.records[i].Role = *upd.Role
		}
		return r.records[i], nil
	}
	return models.User{}, utils.NotFoundf("Pengguna dengan ID %d tidak ditemukan", id)
}

// Delete removes a user by id.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return utils.NotFoundf("Pengguna dengan ID %d tidak ditemukan", id)
}

// emailTaken reports whether another user already holds the email.
// Caller holds the lock.
func (r *UserRepository) emailTaken(email string, excludeID int) bool {
	for _, u := range r.records {
		if u.ID != excludeID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func validateUser(name, email, phone, role string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return utils.Invalidf("Nama dan email harus diisi.")
	}
	if !strings.Contains(email, "@") {
		return utils.Invalidf("Email tidak valid")
	}
	if !phonePattern.MatchString(phone) {
		return utils.Invalidf("Nomor telepon tidak valid")
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		return utils.Invalidf("Role harus admin atau user")
	}
	return nil
}
