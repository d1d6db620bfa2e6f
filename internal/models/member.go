package models

type GroupMember struct {
	ID      int64   `json:"id"`
	GroupID int64   `json:"group_id"`
	Name    string  `json:"name"`
	Email   *string `json:"email"`
}

// NewMember is the member shape clients supply when creating a group
// or replacing its member list; ids are assigned by the store.
type NewMember struct {
	Name  string  `json:"name" validate:"required"`
	Email *string `json:"email,omitempty"`
}
