// Package models defines the profile draft edited by the wizard and the wire
// shapes exchanged with the backend profile resource.
package models

// Orientation is the optional sexual-orientation sub-record. Display controls
// whether other users see it in the feed.
type Orientation struct {
	Type    string `json:"type"`
	Display bool   `json:"display"`
}

// RelationshipGoals is the optional goals sub-record.
type RelationshipGoals struct {
	Goal    string `json:"goal"`
	Display bool   `json:"display"`
}

// PhotoRef is the backend's attachment-record shape for one stored photo.
// The capitalized JSON key is the backend's, not a typo.
type PhotoRef struct {
	URL string `json:"Url"`
}

// Interest list and photo list bounds.
const (
	MinInterests = 5
	MaxInterests = 20
	MaxPhotos    = 6
)

// Draft is the in-progress, not-yet-submitted profile. It is mutated
// incrementally across the wizard steps and persisted to the backend only on
// explicit submit.
type Draft struct {
	Name            string
	Gender          string
	Program         string
	YearOfJoin      int
	Interests       []string
	Orientation     *Orientation
	Goals           *RelationshipGoals
	PersonalityType string
	PublicKey       string
	Photos          []string

	// InterestInput is the interest currently being typed; editor-only
	// scratch state, stripped before submission.
	InterestInput string

	// Complete is set after a successful submit.
	Complete bool
}

// ProfileRecord is the backend representation of a full profile, used both
// for hydration (GET) and submission (POST).
type ProfileRecord struct {
	Email             string             `json:"email"`
	Name              string             `json:"name"`
	Gender            string             `json:"gender"`
	Program           string             `json:"program"`
	YearOfJoin        int                `json:"yearOfJoin"`
	Interests         []string           `json:"interests"`
	SexualOrientation *Orientation       `json:"sexualOrientation,omitempty"`
	RelationshipGoals *RelationshipGoals `json:"relationshipGoals,omitempty"`
	PersonalityType   string             `json:"personalityType,omitempty"`
	PublicKey         string             `json:"publicKey"`
	ProfilePicURLs    []PhotoRef         `json:"profilePicUrls"`
}

// UserSummary is one remote user in a feed page.
type UserSummary struct {
	ID                string             `json:"_id"`
	Name              string             `json:"name"`
	Gender            string             `json:"gender"`
	Program           string             `json:"program"`
	YearOfJoin        int                `json:"yearOfJoin"`
	Interests         []string           `json:"interests"`
	SexualOrientation *Orientation       `json:"sexualOrientation"`
	RelationshipGoals *RelationshipGoals `json:"relationshipGoals"`
	PersonalityType   string             `json:"personalityType"`
	ProfilePicURLs    []PhotoRef         `json:"profilePicUrls"`
}

// Record packages the draft into the backend shape, translating the photo
// list into attachment records and dropping editor-only scratch fields.
func (d *Draft) Record(email string) ProfileRecord {
	pics := make([]PhotoRef, 0, len(d.Photos))
	for _, u := range d.Photos {
		pics = append(pics, PhotoRef{URL: u})
	}
	return ProfileRecord{
		Email:             email,
		Name:              d.Name,
		Gender:            d.Gender,
		Program:           d.Program,
		YearOfJoin:        d.YearOfJoin,
		Interests:         append([]string(nil), d.Interests...),
		SexualOrientation: d.Orientation,
		RelationshipGoals: d.Goals,
		PersonalityType:   d.PersonalityType,
		PublicKey:         d.PublicKey,
		ProfilePicURLs:    pics,
	}
}

// DraftFromRecord hydrates a draft from the backend representation.
func DraftFromRecord(rec ProfileRecord) *Draft {
	photos := make([]string, 0, len(rec.ProfilePicURLs))
	for _, p := range rec.ProfilePicURLs {
		if p.URL != "" {
			photos = append(photos, p.URL)
		}
	}
	return &Draft{
		Name:            rec.Name,
		Gender:          rec.Gender,
		Program:         rec.Program,
		YearOfJoin:      rec.YearOfJoin,
		Interests:       append([]string(nil), rec.Interests...),
		Orientation:     rec.SexualOrientation,
		Goals:           rec.RelationshipGoals,
		PersonalityType: rec.PersonalityType,
		PublicKey:       rec.PublicKey,
		Photos:          photos,
	}
}
