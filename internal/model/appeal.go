package model

import "time"

// Appeal is a user-filed report reviewed by admins.
//
// Fields:
//  ID             – primary key identifier.
//  ReporterID     – user who filed the appeal.
//  AppealType     – category chosen by the reporter (spam, abuse, ...).
//  ReportedTarget – what is being reported, serialized as "report".
//  Content        – free-form description.
//  CreatedAt      – creation timestamp.
type Appeal struct {
	ID             uint64    `json:"id"`         // appeals.id
	ReporterID     uint64    `json:"reporterId"` // appeals.reporter_id
	AppealType     string    `json:"appealType"` // appeals.appeal_type
	ReportedTarget string    `json:"report"`     // appeals.reported_target
	Content        string    `json:"content"`    // appeals.content
	CreatedAt      time.Time `json:"createdAt"`  // appeals.created_at

	Reporter *UserRef `json:"reporter,omitempty"` // populated on reads
}
