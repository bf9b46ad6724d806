package profile

import (
	"github.com/collegecupid/cupid-cli/internal/client/models"
)

// Step identifies one screen of the profile wizard.
type Step int

const (
	StepBasic Step = iota + 1
	StepPreferences
	StepInterests
	StepPhotos
)

func (s Step) String() string {
	switch s {
	case StepBasic:
		return "basic info"
	case StepPreferences:
		return "preferences"
	case StepInterests:
		return "interests"
	case StepPhotos:
		return "photos"
	default:
		return "unknown"
	}
}

// Validation views per step. Tags drive the field-specific messages.
type stepBasicFields struct {
	Name       string `json:"name" validate:"required"`
	Gender     string `json:"gender" validate:"required"`
	Program    string `json:"program" validate:"required"`
	YearOfJoin int    `json:"yearOfJoin" validate:"required"`
}

type stepPreferencesFields struct {
	PublicKey string `json:"publicKey" validate:"required"`
}

type submitFields struct {
	stepBasicFields
	PublicKey string   `json:"publicKey" validate:"required"`
	Interests []string `json:"interests" validate:"min=5,max=20"`
	Photos    []string `json:"photos" validate:"min=1,max=6"`
}

// Wizard is the profile editor state machine. The draft survives backward
// navigation untouched; only Next is gated.
type Wizard struct {
	draft *models.Draft
	step  Step
}

// NewWizard starts editing draft at the first step. A nil draft begins a
// fresh profile.
func NewWizard(draft *models.Draft) *Wizard {
	if draft == nil {
		draft = &models.Draft{}
	}
	return &Wizard{draft: draft, step: StepBasic}
}

func (w *Wizard) Draft() *models.Draft { return w.draft }

func (w *Wizard) Step() Step { return w.step }

// OnLastStep reports whether the wizard sits on the terminal step, where the
// only forward transition is Submit.
func (w *Wizard) OnLastStep() bool { return w.step == StepPhotos }

// Next validates the current step's preconditions and advances one step.
// On a failed precondition the wizard stays put and the returned error
// carries field-specific messages.
func (w *Wizard) Next() error {
	if err := w.validateStep(w.step); err != nil {
		return err
	}
	if w.step < StepPhotos {
		w.step++
	}
	return nil
}

// Prev moves one step back unconditionally, preserving all field values.
func (w *Wizard) Prev() {
	if w.step > StepBasic {
		w.step--
	}
}

func (w *Wizard) validateStep(s Step) error {
	d := w.draft
	switch s {
	case StepBasic:
		return checkStruct(stepBasicFields{
			Name:       d.Name,
			Gender:     d.Gender,
			Program:    d.Program,
			YearOfJoin: d.YearOfJoin,
		})
	case StepPreferences:
		return checkStruct(stepPreferencesFields{PublicKey: d.PublicKey})
	case StepInterests:
		if len(d.Interests) < models.MinInterests {
			return &ValidationError{Fields: map[string]string{
				"interests": "pick at least 5 interests",
			}}
		}
		return nil
	default:
		return nil
	}
}

// ValidateSubmit checks every submission precondition. A violation blocks
// submission; callers must not issue the write call when this fails.
func ValidateSubmit(d *models.Draft) error {
	return checkStruct(submitFields{
		stepBasicFields: stepBasicFields{
			Name:       d.Name,
			Gender:     d.Gender,
			Program:    d.Program,
			YearOfJoin: d.YearOfJoin,
		},
		PublicKey: d.PublicKey,
		Interests: d.Interests,
		Photos:    d.Photos,
	})
}
