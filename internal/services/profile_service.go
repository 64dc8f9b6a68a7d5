package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/marinval/userhub-be/internal/models"
)

var (
	// ErrProfileNotFound signals a view of a profile that does not exist.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrNothingToUpdate signals a patch that carried no fields.
	ErrNothingToUpdate = errors.New("no fields to update")
	// ErrNotModified signals an update that changed no rows.
	ErrNotModified = errors.New("no rows updated")
)

// ProfileServiceProvider defines the interface for profile services.
type ProfileServiceProvider interface {
	Get(ctx context.Context, userID string) (models.ProfileView, error)
	Update(ctx context.Context, userID string, patch models.ProfilePatch) error
}

// ProfileService provides business logic for user profiles.
type ProfileService struct {
	db *sql.DB
}

// NewProfileService creates a new ProfileService.
func NewProfileService(db *sql.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get retrieves a user's profile with the owning username joined in.
func (s *ProfileService) Get(ctx context.Context, userID string) (models.ProfileView, error) {
	var view models.ProfileView
	row := s.db.QueryRowContext(ctx, `
		SELECT u.username, p.display_name, p.bio
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = ?`, userID)
	err := row.Scan(&view.Username, &view.DisplayName, &view.Bio)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProfileView{}, ErrProfileNotFound
		}
		return models.ProfileView{}, err
	}
	return view, nil
}

// Update applies a partial profile update, building the SET clause from only
// the fields present in the patch.
func (s *ProfileService) Update(ctx context.Context, userID string, patch models.ProfilePatch) error {
	if patch.IsEmpty() {
		return ErrNothingToUpdate
	}

	var sets []string
	var args []interface{}
	if patch.DisplayName != nil {
		sets = append(sets, "display_name = ?")
		args = append(args, *patch.DisplayName)
	}
	if patch.Bio != nil {
		sets = append(sets, "bio = ?")
		args = append(args, *patch.Bio)
	}
	args = append(args, userID)

	res, err := s.db.ExecContext(ctx,
		"UPDATE profiles SET "+strings.Join(sets, ", ")+" WHERE user_id = ?", args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotModified
	}
	return nil
}
