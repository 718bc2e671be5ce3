package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hrive/portal-backend/internal/core/domain"
	"github.com/hrive/portal-backend/internal/core/ports"
)

const usersTable = "/users"

// UserRepository implements credential persistence on the managed backend.
type UserRepository struct {
	client *Client
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// supabaseUser is the wire shape of a users row on the REST interface.
type supabaseUser struct {
	ID           int64  `json:"id,omitempty"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}

func (su supabaseUser) toDomain() *domain.User {
	return &domain.User{
		ID:           su.ID,
		Email:        su.Email,
		PasswordHash: su.PasswordHash,
		Role:         su.Role,
	}
}

// EnsureSchema is a no-op: the managed service owns its schema and the REST
// interface cannot issue DDL.
func (r *UserRepository) EnsureSchema(ctx context.Context) error {
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := "?select=id,email,password_hash,role&email=eq." + url.QueryEscape(email) + "&limit=1"
	req, err := r.client.newRequest(ctx, http.MethodGet, usersTable+query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("find user", resp)
	}

	var rows []supabaseUser
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("find user: decode response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	payload, err := json.Marshal([]supabaseUser{{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
	}})
	if err != nil {
		return nil, fmt.Errorf("insert user: encode payload: %w", err)
	}

	req, err := r.client.newRequest(ctx, http.MethodPost, usersTable, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	// Ask PostgREST to echo the created row back so the caller gets the id.
	req.Header.Set("Prefer", "return=representation")

	resp, err := r.client.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// PostgREST reports a unique violation as 409.
	if resp.StatusCode == http.StatusConflict {
		return nil, domain.ErrUserExists
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, statusError("insert user", resp)
	}

	var rows []supabaseUser
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("insert user: decode response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert user: empty representation")
	}
	return rows[0].toDomain(), nil
}

func (r *UserRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

// statusError turns an unexpected REST status into a diagnostic error,
// including the backend's message body when it has one.
func statusError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if len(body) > 0 {
		return fmt.Errorf("%s: status %d: %s", op, resp.StatusCode, body)
	}
	return fmt.Errorf("%s: status %d", op, resp.StatusCode)
}
