package dto

import "github.com/campushub/club-directory/internal/domain/entity"

// CreateClub carries the caller-supplied fields for a new club. The id is
// always generated server side.
type CreateClub struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Linktree    string `json:"linktree"`
	Image       string `json:"image"`
}

// UpdateClub patches an existing club. A nil Linktree leaves the stored link
// untouched; an empty Image re-applies the default.
type UpdateClub struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Linktree    *string `json:"linktree"`
	Image       string  `json:"image"`
}

type Club struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Linktree    string `json:"linktree"`
	Image       string `json:"image"`
}

// ClubResponse is the uniform mutation/read envelope: success=false always
// pairs with a null club.
type ClubResponse struct {
	Success bool  `json:"success"`
	Club    *Club `json:"club"`
}

type ClubsResponse struct {
	Success bool   `json:"success"`
	Clubs   []Club `json:"clubs"`
}

func NewClub(club *entity.Club) *Club {
	return &Club{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		Linktree:    club.Linktree,
		Image:       club.Image,
	}
}

func NewClubs(clubs []entity.Club) []Club {
	result := make([]Club, 0, len(clubs))
	for i := range clubs {
		result = append(result, *NewClub(&clubs[i]))
	}
	return result
}
