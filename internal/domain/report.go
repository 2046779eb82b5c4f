package domain

import "strings"

// ReportSubmission carries the raw field values of a submitted intake form.
type ReportSubmission struct {
	GuildID   string
	ChannelID string
	Actor     Actor
	Subject   string
	Branch    string
	Links     string
	Details   string
}

// Normalize trims surrounding whitespace from every field.
func (s ReportSubmission) Normalize() ReportSubmission {
	s.Subject = strings.TrimSpace(s.Subject)
	s.Branch = strings.TrimSpace(s.Branch)
	s.Links = strings.TrimSpace(s.Links)
	s.Details = strings.TrimSpace(s.Details)
	return s
}

// Report is a form-backed ticket. It has no lifecycle beyond delivery: once
// the review notice is sent, the system retains no copy.
type Report struct {
	Code      string
	Subject   string
	Branch    string
	Links     string
	Details   string
	Submitter Actor
}

// NoticeField is one structured field of a review notice.
type NoticeField struct {
	Name   string
	Value  string
	Inline bool
}

// ReviewNotice is the staff-facing rendering of a report, delivered to the
// review channel. MentionRoleID is empty when the staff role could not be
// resolved; the mention is omitted rather than failing delivery.
type ReviewNotice struct {
	Title         string
	Body          string
	Fields        []NoticeField
	MentionRoleID string
}

// ComposeReviewNotice builds the notice for a report. The links field is
// omitted entirely when blank; branch and submitter are always present.
func ComposeReviewNotice(report Report, mentionRoleID string) ReviewNotice {
	fields := []NoticeField{
		{Name: "Submitted by", Value: report.Submitter.DisplayName + " (" + report.Submitter.ID + ")", Inline: true},
		{Name: "Branch/Version", Value: report.Branch, Inline: true},
	}
	if report.Links != "" {
		fields = append(fields, NoticeField{Name: "Evidence Links", Value: report.Links})
	}
	return ReviewNotice{
		Title:         "[" + report.Code + "] " + report.Subject,
		Body:          report.Details,
		Fields:        fields,
		MentionRoleID: mentionRoleID,
	}
}
