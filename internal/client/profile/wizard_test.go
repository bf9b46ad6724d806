package profile

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegecupid/cupid-cli/internal/client/models"
	"github.com/collegecupid/cupid-cli/internal/common"
)

func completeDraft() *models.Draft {
	return &models.Draft{
		Name:       "Asha",
		Gender:     "female",
		Program:    "CSE",
		YearOfJoin: 2023,
		PublicKey:  "ab12",
		Interests:  []string{"music", "films", "running", "chess", "cooking"},
		Photos:     []string{"https://cdn.example.com/p.jpg?id=1"},
	}
}

func TestWizard_StartsAtBasic(t *testing.T) {
	w := NewWizard(nil)
	assert.Equal(t, StepBasic, w.Step())
	assert.False(t, w.OnLastStep())
}

func TestNext_BlocksOnMissingBasicFields(t *testing.T) {
	d := completeDraft()
	d.Name = ""
	w := NewWizard(d)

	err := w.Next()
	require.Error(t, err)
	require.True(t, errors.Is(err, common.ErrValidation))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")

	// The wizard must not advance on a failed precondition.
	assert.Equal(t, StepBasic, w.Step())
}

func TestNext_AdvancesToLastStep(t *testing.T) {
	w := NewWizard(completeDraft())

	require.NoError(t, w.Next())
	assert.Equal(t, StepPreferences, w.Step())
	require.NoError(t, w.Next())
	assert.Equal(t, StepInterests, w.Step())
	require.NoError(t, w.Next())
	assert.Equal(t, StepPhotos, w.Step())
	assert.True(t, w.OnLastStep())

	// Next on the terminal step stays put.
	require.NoError(t, w.Next())
	assert.Equal(t, StepPhotos, w.Step())
}

func TestPrev_IsUnconditionalAndPreservesValues(t *testing.T) {
	d := completeDraft()
	w := NewWizard(d)
	require.NoError(t, w.Next())

	// Wipe a required field while on step two and go back anyway.
	d.Name = ""
	w.Prev()
	assert.Equal(t, StepBasic, w.Step())
	assert.Equal(t, "", w.Draft().Name)
	assert.Equal(t, "CSE", w.Draft().Program)

	// Prev at the first step is a no-op.
	w.Prev()
	assert.Equal(t, StepBasic, w.Step())
}

func TestNext_InterestsFloor(t *testing.T) {
	d := completeDraft()
	d.Interests = d.Interests[:4]
	w := NewWizard(d)
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	err := w.Next()
	require.Error(t, err)
	assert.Equal(t, StepInterests, w.Step())
}

func TestValidateSubmit(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *models.Draft)
		field  string
	}{
		{"complete draft passes", func(d *models.Draft) {}, ""},
		{"missing name", func(d *models.Draft) { d.Name = "" }, "name"},
		{"missing year", func(d *models.Draft) { d.YearOfJoin = 0 }, "yearOfJoin"},
		{"missing public key", func(d *models.Draft) { d.PublicKey = "" }, "publicKey"},
		{"too few interests", func(d *models.Draft) { d.Interests = d.Interests[:3] }, "interests"},
		{"no photos", func(d *models.Draft) { d.Photos = nil }, "photos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := completeDraft()
			tt.mutate(d)

			err := ValidateSubmit(d)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestValidateSubmit_TooManyInterests(t *testing.T) {
	d := completeDraft()
	d.Interests = nil
	for i := 0; i < models.MaxInterests+1; i++ {
		d.Interests = append(d.Interests, fmt.Sprintf("tag%d", i))
	}

	var verr *ValidationError
	require.ErrorAs(t, ValidateSubmit(d), &verr)
	assert.Contains(t, verr.Fields, "interests")
}
