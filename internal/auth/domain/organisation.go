package domain

import "time"

type Organisation struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrganisationView is the external representation of an organisation.
type OrganisationView struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (o Organisation) View() OrganisationView {
	return OrganisationView{
		OrgID:       o.ID,
		Name:        o.Name,
		Description: o.Description,
	}
}

// Membership links one user to one organisation. It carries no role: being
// a member is the whole permission model.
type Membership struct {
	OrgID     string
	UserID    string
	CreatedAt time.Time
}
