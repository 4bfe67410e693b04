// Package docinfo holds the document-level metadata record the \info group
// populates (spec.md §3's Info record). Its field set is a direct
// descendant of the teacher's metadata.DocumentMetadata — the same
// properties a real Word document carries in its SummaryInformation stream
// — trimmed to the subset an RTF \info destination actually fills and
// stripped of the OLE property-set parsing that populated it in the
// teacher, since RTF carries these as plain nested text/date destinations
// instead of a binary property set.
package docinfo

import "time"

// Info is the destination target for the \info group's children: each
// TextSetter or TimeSetter the control dispatcher installs for a \info
// child keyword assigns into exactly one of these fields on group close.
type Info struct {
	Title       string
	Subject     string
	Author      string
	Manager     string
	Company     string
	Operator    string
	Category    string
	Keywords    string
	Comment     string
	DocComment  string
	HlinkBase   string
	CreatedAt   time.Time
	RevisedAt   time.Time
	PrintedAt   time.Time
	BackedUpAt  time.Time
}

// StringField names one of Info's string-valued members, used by the
// control dispatcher to bind a TextSetter to the right field without a
// large type switch at every call site.
type StringField int

const (
	FieldTitle StringField = iota
	FieldSubject
	FieldAuthor
	FieldManager
	FieldCompany
	FieldOperator
	FieldCategory
	FieldKeywords
	FieldComment
	FieldDocComment
	FieldHlinkBase
)

// SetString assigns text to the named field.
func (i *Info) SetString(field StringField, text string) {
	switch field {
	case FieldTitle:
		i.Title = text
	case FieldSubject:
		i.Subject = text
	case FieldAuthor:
		i.Author = text
	case FieldManager:
		i.Manager = text
	case FieldCompany:
		i.Company = text
	case FieldOperator:
		i.Operator = text
	case FieldCategory:
		i.Category = text
	case FieldKeywords:
		i.Keywords = text
	case FieldComment:
		i.Comment = text
	case FieldDocComment:
		i.DocComment = text
	case FieldHlinkBase:
		i.HlinkBase = text
	}
}

// DateField names one of Info's time-valued members.
type DateField int

const (
	FieldCreated DateField = iota
	FieldRevised
	FieldPrinted
	FieldBackedUp
)

// SetDate assigns t to the named field.
func (i *Info) SetDate(field DateField, t time.Time) {
	switch field {
	case FieldCreated:
		i.CreatedAt = t
	case FieldRevised:
		i.RevisedAt = t
	case FieldPrinted:
		i.PrintedAt = t
	case FieldBackedUp:
		i.BackedUpAt = t
	}
}
