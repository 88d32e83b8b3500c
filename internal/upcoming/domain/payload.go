package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// OptionalString distinguishes an absent field from JSON null and from an
// empty string, which a plain *string cannot express.
type OptionalString struct {
	Present bool
	Null    bool
	Value   string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if isJSONNull(data) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// FlexStrings accepts either a single JSON string or an array of strings and
// normalizes to a list. Other scalar values are carried as their literal text
// so they coerce into a one-element list the same way a string does.
type FlexStrings struct {
	Present  bool
	Null     bool
	IsString bool
	Str      string
	Values   []string
}

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	f.Present = true
	if isJSONNull(data) {
		f.Null = true
		return nil
	}
	if err := json.Unmarshal(data, &f.Values); err == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.IsString = true
		f.Str = s
		return nil
	}
	f.IsString = true
	f.Str = string(bytes.TrimSpace(data))
	return nil
}

// empty reports emptiness per the required-field rule: null and the empty
// string both fail, while an explicitly empty list passes.
func (f *FlexStrings) empty() bool {
	return f.Null || (f.IsString && f.Str == "")
}

func (f *FlexStrings) list() []string {
	if f.IsString {
		return []string{f.Str}
	}
	if f.Values == nil {
		return []string{}
	}
	return f.Values
}

// NameList accepts only a JSON array of strings. Any other shape is recorded
// rather than rejected at decode time, so the required-field pass still runs
// in order before the type error is reported.
type NameList struct {
	Present   bool
	Null      bool
	WrongType bool
	IsString  bool
	Str       string
	Values    []string
}

func (l *NameList) UnmarshalJSON(data []byte) error {
	l.Present = true
	if isJSONNull(data) {
		l.Null = true
		return nil
	}
	if err := json.Unmarshal(data, &l.Values); err == nil {
		return nil
	}
	l.WrongType = true
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.IsString = true
		l.Str = s
	}
	return nil
}

func (l *NameList) empty() bool {
	return l.Null || (l.IsString && l.Str == "")
}

func isJSONNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}

// Payload is the typed patch accepted by create and update. Every field is
// optional; Normalize merges it over an existing record and validates the
// merged view, so an update with omitted fields inherits prior values and
// still re-validates cleanly.
type Payload struct {
	Name        OptionalString `json:"name"`
	Client      OptionalString `json:"client"`
	Description OptionalString `json:"description"`
	Deadline    OptionalString `json:"deadline"`
	TechStack   FlexStrings    `json:"techStack"`
	Status      OptionalString `json:"status"`
	AssignedTo  NameList       `json:"assignedTo"`
}

// Normalize validates the payload merged over existing and returns the
// resulting record. Pass the zero UpcomingProject for create. Checks run in a
// fixed order and the first failure wins; on failure the zero record and a
// *ValidationError are returned and nothing is mutated.
func (p *Payload) Normalize(existing UpcomingProject) (UpcomingProject, error) {
	isNew := existing.Code == ""
	out := existing

	resolve := func(opt OptionalString, cur string) (value string, missing bool) {
		if opt.Present {
			if opt.Null {
				return "", true
			}
			return opt.Value, opt.Value == ""
		}
		return cur, cur == ""
	}

	var missing bool
	if out.Name, missing = resolve(p.Name, existing.Name); missing {
		return UpcomingProject{}, newValidationError("Missing required field: name")
	}
	if out.Client, missing = resolve(p.Client, existing.Client); missing {
		return UpcomingProject{}, newValidationError("Missing required field: client")
	}
	if out.Description, missing = resolve(p.Description, existing.Description); missing {
		return UpcomingProject{}, newValidationError("Missing required field: description")
	}
	if out.Deadline, missing = resolve(p.Deadline, existing.Deadline); missing {
		return UpcomingProject{}, newValidationError("Missing required field: deadline")
	}

	techStack := existing.TechStack
	switch {
	case p.TechStack.Present && p.TechStack.empty():
		return UpcomingProject{}, newValidationError("Missing required field: techStack")
	case p.TechStack.Present:
		techStack = p.TechStack.list()
	case isNew:
		return UpcomingProject{}, newValidationError("Missing required field: techStack")
	}

	if out.Status, missing = resolve(p.Status, existing.Status); missing {
		return UpcomingProject{}, newValidationError("Missing required field: status")
	}

	assignedTo := existing.AssignedTo
	switch {
	case p.AssignedTo.Present && p.AssignedTo.empty():
		return UpcomingProject{}, newValidationError("Missing required field: assignedTo")
	case p.AssignedTo.Present && !p.AssignedTo.WrongType:
		assignedTo = p.AssignedTo.Values
	case isNew && !p.AssignedTo.Present:
		return UpcomingProject{}, newValidationError("Missing required field: assignedTo")
	}

	if err := validation.Validate(out.Deadline, validation.By(parseableDeadline)); err != nil {
		return UpcomingProject{}, newValidationError("Invalid deadline format")
	}
	if err := validation.Validate(out.Status, validation.In(statusValues()...)); err != nil {
		return UpcomingProject{}, newValidationError(
			"Invalid status. Must be one of: " + strings.Join(ValidStatuses, ", "))
	}
	if p.AssignedTo.Present && p.AssignedTo.WrongType {
		return UpcomingProject{}, newValidationError("assignedTo must be an array")
	}

	out.TechStack = techStack
	if assignedTo == nil {
		assignedTo = []string{}
	}
	out.AssignedTo = assignedTo
	return out, nil
}

func parseableDeadline(value interface{}) error {
	s, _ := value.(string)
	if _, ok := ParseDeadline(s); !ok {
		return errors.New("must be a parseable date")
	}
	return nil
}

func statusValues() []interface{} {
	vals := make([]interface{}, len(ValidStatuses))
	for i, s := range ValidStatuses {
		vals[i] = s
	}
	return vals
}
