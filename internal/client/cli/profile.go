package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/collegecupid/cupid-cli/internal/client/api"
	"github.com/collegecupid/cupid-cli/internal/client/models"
	"github.com/collegecupid/cupid-cli/internal/client/profile"
	"github.com/collegecupid/cupid-cli/internal/common"
)

// getSimpleText, getInt and getYesNo are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getInt        = GetInt
	getYesNo      = GetYesNo
)

// EditProfile drives the multi-step profile wizard: hydrate the draft from
// the backend, walk the steps with per-step validation, and submit on the
// terminal step. Backward navigation never loses field values.
func (a *App) EditProfile(ctx context.Context) error {
	sess, err := a.session.Current(ctx)
	if err != nil {
		a.printer.Warn("Not signed in. Use 'login' first.")
		return common.ErrAuthMissing
	}

	draft, err := a.profileService.Load(ctx, sess.Email)
	if err != nil {
		if a.checkSessionExpired(ctx, err) {
			return err
		}
		return err
	}
	if draft != nil {
		a.printer.Info("Loaded your existing profile.")
	}

	w := profile.NewWizard(draft)

	for {
		a.printer.Info("")
		a.printer.Info("-- Step %d of 4: %s --", int(w.Step()), w.Step())

		var stepErr error
		switch w.Step() {
		case profile.StepBasic:
			stepErr = a.promptBasic(w)
		case profile.StepPreferences:
			stepErr = a.promptPreferences(w)
		case profile.StepInterests:
			stepErr = a.promptInterests(w)
		case profile.StepPhotos:
			stepErr = a.promptPhotos(ctx, w)
		}
		if stepErr != nil {
			return stepErr
		}

		if w.OnLastStep() {
			action, err := getSimpleText(a.reader, "[s]ubmit, [p]rev or [q]uit", os.Stdout)
			if err != nil {
				return err
			}
			switch strings.ToLower(action) {
			case "s", "submit":
				if a.submitDraft(ctx, sess.Email, w) {
					return nil
				}
			case "p", "prev":
				w.Prev()
			case "q", "quit":
				a.printer.Info("Draft discarded. Nothing was saved.")
				return nil
			}
			continue
		}

		action, err := getSimpleText(a.reader, "[n]ext, [p]rev or [q]uit", os.Stdout)
		if err != nil {
			return err
		}
		switch strings.ToLower(action) {
		case "n", "next":
			if err := w.Next(); err != nil {
				a.reportValidation(err)
			}
		case "p", "prev":
			w.Prev()
		case "q", "quit":
			a.printer.Info("Draft discarded. Nothing was saved.")
			return nil
		}
	}
}

// labeled formats a prompt showing the current value; an empty answer keeps it.
func labeled(label, current string) string {
	if current == "" {
		return label
	}
	return fmt.Sprintf("%s [%s] (Enter to keep)", label, current)
}

func (a *App) promptBasic(w *profile.Wizard) error {
	d := w.Draft()

	if v, err := getSimpleText(a.reader, labeled("Name", d.Name), os.Stdout); err != nil {
		return err
	} else if v != "" {
		d.Name = v
	}

	if v, err := getSimpleText(a.reader, labeled("Gender", d.Gender), os.Stdout); err != nil {
		return err
	} else if v != "" {
		d.Gender = v
	}

	if v, err := getSimpleText(a.reader, labeled("Program", d.Program), os.Stdout); err != nil {
		return err
	} else if v != "" {
		d.Program = v
	}

	year, err := getInt(a.reader, labeled("Year of join", itoaOrEmpty(d.YearOfJoin)), d.YearOfJoin, os.Stdout)
	if err != nil {
		a.printer.Warn("%v", err)
		return nil
	}
	d.YearOfJoin = year
	return nil
}

func itoaOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func (a *App) promptPreferences(w *profile.Wizard) error {
	d := w.Draft()

	if d.PublicKey == "" {
		pk, err := loadOrCreateIdentity(a.dataDir)
		if err != nil {
			a.printer.Errorf("Could not prepare your chat identity key: %v", err)
			return err
		}
		d.PublicKey = pk
		a.printer.Info("Chat identity key ready.")
	}

	current := ""
	if d.Orientation != nil {
		current = d.Orientation.Type
	}
	if v, err := getSimpleText(a.reader, labeled("Sexual orientation", current), os.Stdout); err != nil {
		return err
	} else if v != "" {
		show, err := getYesNo(a.reader, "Show orientation on your profile?", os.Stdout)
		if err != nil {
			return err
		}
		d.Orientation = &models.Orientation{Type: v, Display: show}
	}

	current = ""
	if d.Goals != nil {
		current = d.Goals.Goal
	}
	if v, err := getSimpleText(a.reader, labeled("Relationship goal", current), os.Stdout); err != nil {
		return err
	} else if v != "" {
		show, err := getYesNo(a.reader, "Show relationship goal on your profile?", os.Stdout)
		if err != nil {
			return err
		}
		d.Goals = &models.RelationshipGoals{Goal: v, Display: show}
	}

	if v, err := getSimpleText(a.reader, labeled("Personality type", d.PersonalityType), os.Stdout); err != nil {
		return err
	} else if v != "" {
		d.PersonalityType = v
	}
	return nil
}

func (a *App) promptInterests(w *profile.Wizard) error {
	for {
		d := w.Draft()
		a.printer.Info("Interests (%d/%d): %s", len(d.Interests), models.MaxInterests, strings.Join(d.Interests, ", "))

		line, err := getSimpleText(a.reader, "add <tag>, rm <tag>, or done", os.Stdout)
		if err != nil {
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "add":
			tag := strings.Join(parts[1:], " ")
			if !w.AddInterest(tag) {
				a.printer.Warn("Could not add %q: empty, duplicate, or the list is full.", tag)
			}
		case "rm":
			tag := strings.Join(parts[1:], " ")
			if !w.RemoveInterest(tag) {
				a.printer.Warn("No such interest: %q", tag)
			}
		case "done":
			return nil
		default:
			a.printer.Warn("Unknown action: %s", parts[0])
		}
	}
}

func (a *App) promptPhotos(ctx context.Context, w *profile.Wizard) error {
	for {
		d := w.Draft()
		a.printer.Info("Photos (%d/%d):", len(d.Photos), models.MaxPhotos)
		for i, u := range d.Photos {
			a.printer.Info("  %d. %s", i+1, u)
		}

		line, err := getSimpleText(a.reader, "upload <path> [path...], delete <n>, or done", os.Stdout)
		if err != nil {
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "upload":
			if len(parts) < 2 {
				a.printer.Warn("Usage: upload <path> [path...]")
				continue
			}
			if err := a.uploadPhotos(ctx, w, parts[1:]); err != nil {
				return err
			}
		case "delete":
			if len(parts) != 2 {
				a.printer.Warn("Usage: delete <n>")
				continue
			}
			if err := a.deletePhoto(ctx, w, parts[1]); err != nil {
				return err
			}
		case "done":
			return nil
		default:
			a.printer.Warn("Unknown action: %s", parts[0])
		}
	}
}

func (a *App) uploadPhotos(ctx context.Context, w *profile.Wizard, paths []string) error {
	results := a.profileService.UploadPhotos(ctx, w.Draft(), paths)
	for _, res := range results {
		if res.Err == nil {
			a.printer.Success("Uploaded %s", res.Path)
			continue
		}
		if a.checkSessionExpired(ctx, res.Err) {
			return res.Err
		}
		a.printer.Errorf("Rejected %s: %v", res.Path, res.Err)
	}
	return nil
}

func (a *App) deletePhoto(ctx context.Context, w *profile.Wizard, arg string) error {
	d := w.Draft()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(d.Photos) {
		a.printer.Warn("No photo numbered %q", arg)
		return nil
	}
	photoURL := d.Photos[n-1]

	confirmed, err := getYesNo(a.reader, fmt.Sprintf("Delete photo %d?", n), os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := a.profileService.DeletePhoto(ctx, d, photoURL); err != nil {
		if a.checkSessionExpired(ctx, err) {
			return err
		}
		a.printer.Errorf("Could not delete photo: %v", err)
		return nil
	}
	a.printer.Info("Photo removed.")
	return nil
}

// submitDraft performs the single write call and reports whether the wizard
// is finished. Preconditions are re-checked locally; no network call happens
// when they fail.
func (a *App) submitDraft(ctx context.Context, email string, w *profile.Wizard) bool {
	err := a.profileService.Submit(ctx, email, w.Draft())
	if err == nil {
		a.printer.Success("Profile saved.")
		// Re-hydrate so the draft reflects server-side normalization.
		if fresh, loadErr := a.profileService.Load(ctx, email); loadErr == nil && fresh != nil {
			fresh.Complete = true
			*w.Draft() = *fresh
		}
		return true
	}

	var verr *profile.ValidationError
	if errors.As(err, &verr) {
		a.reportValidation(err)
		return false
	}
	if a.checkSessionExpired(ctx, err) {
		return false
	}

	var berr *api.BackendError
	if errors.As(err, &berr) {
		a.printer.Errorf("%s", berr.Message)
		return false
	}
	a.printer.Errorf("Could not save profile. Please try again.")
	a.logger.Error(ctx, "profile submit failed", "error", err)
	return false
}

// reportValidation prints each field-specific message from a failed step
// transition or submit attempt.
func (a *App) reportValidation(err error) {
	var verr *profile.ValidationError
	if errors.As(err, &verr) {
		for _, field := range verr.SortedFields() {
			a.printer.Warn("  %s", verr.Fields[field])
		}
		return
	}
	a.printer.Warn("%v", err)
}
