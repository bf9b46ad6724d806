package api

import "github.com/collegecupid/cupid-cli/internal/client/models"

type profileResponse struct {
	Success     bool                  `json:"success"`
	UserProfile *models.ProfileRecord `json:"userProfile"`
	Message     string                `json:"message"`
}

type pageResponse struct {
	Success    bool                 `json:"success"`
	Users      []models.UserSummary `json:"users"`
	TotalCount int                  `json:"totalCount"`
}

type saveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	Message  string `json:"message"`
}

// BackendError carries a failure message reported by the backend in an
// otherwise well-formed response. The message is surfaced to the user
// verbatim.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	return e.Message
}
