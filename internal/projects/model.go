package projects

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound    = errors.New("project not found")
	ErrDuplicate   = errors.New("project with this name already exists")
	ErrMissingName = errors.New("missing required field: name")
)

// Project is a delivered/ongoing project. Unlike upcoming projects it is
// keyed by its unique name, a legacy of the dashboard's original data model.
type Project struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Type        string   `json:"type"`
	TechStack   []string `json:"techStack"`
	HandledBy   string   `json:"handledBy"`
	RenewalDate string   `json:"renewalDate"`
	Status      string   `json:"status"`
	Client      string   `json:"client"`
	Description string   `json:"description"`
	AssignedTo  []string `json:"assignedTo"`
	Deadline    string   `json:"deadline"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// techStackField accepts either a comma-separated string or a string array.
type techStackField struct {
	Present bool
	Values  []string
}

func (f *techStackField) UnmarshalJSON(data []byte) error {
	f.Present = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &f.Values); err == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				f.Values = append(f.Values, part)
			}
		}
	}
	return nil
}

// nameListField accepts a string array; any other shape yields an empty list.
type nameListField struct {
	Present bool
	Values  []string
}

func (f *nameListField) UnmarshalJSON(data []byte) error {
	f.Present = true
	if err := json.Unmarshal(data, &f.Values); err != nil {
		f.Values = nil
	}
	return nil
}

// Payload is the patch accepted by create and update; absent fields keep
// their existing values on update and their defaults on create.
type Payload struct {
	Name        *string        `json:"name"`
	URL         *string        `json:"url"`
	Type        *string        `json:"type"`
	TechStack   techStackField `json:"techStack"`
	HandledBy   *string        `json:"handledBy"`
	RenewalDate *string        `json:"renewalDate"`
	Status      *string        `json:"status"`
	Client      *string        `json:"client"`
	Description *string        `json:"description"`
	AssignedTo  nameListField  `json:"assignedTo"`
	Deadline    *string        `json:"deadline"`
}

// Apply merges the payload over existing. The name only changes when the
// payload carries a non-blank one, so a partial update can never unname a
// project.
func (p *Payload) Apply(existing Project) Project {
	out := existing
	if out.Status == "" {
		out.Status = "Active"
	}

	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		out.Name = strings.TrimSpace(*p.Name)
	}
	if p.URL != nil {
		out.URL = *p.URL
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.TechStack.Present {
		out.TechStack = p.TechStack.Values
	}
	if p.HandledBy != nil {
		out.HandledBy = *p.HandledBy
	}
	if p.RenewalDate != nil {
		out.RenewalDate = *p.RenewalDate
	}
	if p.Status != nil && *p.Status != "" {
		out.Status = *p.Status
	}
	if p.Client != nil {
		out.Client = *p.Client
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.AssignedTo.Present {
		out.AssignedTo = p.AssignedTo.Values
	}
	if p.Deadline != nil {
		out.Deadline = *p.Deadline
	}

	if out.TechStack == nil {
		out.TechStack = []string{}
	}
	if out.AssignedTo == nil {
		out.AssignedTo = []string{}
	}
	return out
}
