package models

import "time"

type Group struct {
	ID                 int64     `json:"id"`
	EventID            string    `json:"event_id"`
	CreatorName        string    `json:"creator_name"`
	CreatorEmail       string    `json:"creator_email"`
	GroupName          string    `json:"group_name"`
	AcceptsOthers      bool      `json:"accepts_others"`
	ProjectDescription *string   `json:"project_description"`
	CreatedAt          time.Time `json:"created_at"`
}

type GroupWithMembers struct {
	Group
	Members []GroupMember `json:"members"`
}
