// Package services contains application services for the cupid CLI: profile
// synchronization with the backend and feed pagination.
package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/collegecupid/cupid-cli/internal/client/api"
	"github.com/collegecupid/cupid-cli/internal/client/models"
	"github.com/collegecupid/cupid-cli/internal/client/profile"
	"github.com/collegecupid/cupid-cli/internal/common"
	"github.com/collegecupid/cupid-cli/internal/logging"
)

// UploadResult reports the outcome for one file of a batch upload.
type UploadResult struct {
	Path string
	URL  string
	Err  error
}

// ProfileService synchronizes the profile draft with the backend resource:
// read on load, write on submit, plus photo attachment management.
type ProfileService interface {
	// Load hydrates a draft from the backend. A network failure is treated
	// as "no profile yet" so first-time users can proceed to creation; only
	// common.ErrUnauthorized propagates.
	Load(ctx context.Context, email string) (*models.Draft, error)

	// Submit validates and writes the full draft in exactly one call. A
	// failed precondition blocks the write locally.
	Submit(ctx context.Context, email string, d *models.Draft) error

	// UploadPhotos uploads the given files strictly one at a time, in order.
	// Each file is checked client-side first; a rejected or failed file does
	// not abort its siblings. Successes are appended to the draft in order.
	UploadPhotos(ctx context.Context, d *models.Draft, paths []string) []UploadResult

	// DeletePhoto removes a stored photo by the id embedded in its URL and,
	// on success, drops the URL from the draft. A URL with no id fails
	// locally without a network call.
	DeletePhoto(ctx context.Context, d *models.Draft, photoURL string) error
}

type profileService struct {
	client api.Client
	logger logging.Logger
}

func NewProfileService(client api.Client, logger logging.Logger) ProfileService {
	return &profileService{client: client, logger: logger}
}

func (s *profileService) Load(ctx context.Context, email string) (*models.Draft, error) {
	rec, err := s.client.ProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, err
		}
		// No stored profile, or the backend was unreachable. Either way the
		// user proceeds with a fresh draft.
		s.logger.Warn(ctx, "profile load failed, starting fresh draft", "error", err)
		return nil, nil
	}
	return models.DraftFromRecord(*rec), nil
}

func (s *profileService) Submit(ctx context.Context, email string, d *models.Draft) error {
	if err := profile.ValidateSubmit(d); err != nil {
		return err
	}

	if err := s.client.SaveProfile(ctx, d.Record(email)); err != nil {
		return err
	}

	d.InterestInput = ""
	d.Complete = true
	return nil
}

func (s *profileService) UploadPhotos(ctx context.Context, d *models.Draft, paths []string) []UploadResult {
	results := make([]UploadResult, 0, len(paths))

	for _, path := range paths {
		results = append(results, s.uploadOne(ctx, d, path))
	}
	return results
}

func (s *profileService) uploadOne(ctx context.Context, d *models.Draft, path string) UploadResult {
	res := UploadResult{Path: path}

	if len(d.Photos) >= models.MaxPhotos {
		res.Err = fmt.Errorf("%w: photo limit of %d reached", common.ErrFileConstraint, models.MaxPhotos)
		return res
	}

	content, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", common.ErrFileConstraint, err)
		return res
	}

	if err := profile.CheckPhotoFile(filepath.Base(path), content); err != nil {
		res.Err = err
		return res
	}

	url, err := s.client.UploadImage(ctx, filepath.Base(path), content)
	if err != nil {
		res.Err = err
		return res
	}

	d.Photos = append(d.Photos, url)
	res.URL = url
	return res
}

func (s *profileService) DeletePhoto(ctx context.Context, d *models.Draft, photoURL string) error {
	id, err := profile.PhotoID(photoURL)
	if err != nil {
		return err
	}

	if err := s.client.DeleteImage(ctx, id); err != nil {
		return err
	}

	for i, u := range d.Photos {
		if u == photoURL {
			d.Photos = append(d.Photos[:i], d.Photos[i+1:]...)
			break
		}
	}
	return nil
}
