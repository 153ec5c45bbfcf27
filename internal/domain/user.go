package domain

// User is a read-only input; only active users accrue PTO.
type User struct {
	ID             string `firestore:"-" json:"id"`
	OrganizationID string `firestore:"organizationID" json:"organization_id"`
	Name           string `firestore:"name" json:"name"`
	Email          string `firestore:"email" json:"email"`
	Active         bool   `firestore:"isActive" json:"active"`
}
