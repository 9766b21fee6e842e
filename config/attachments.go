package config

import (
	"github.com/shyptr/schemadirectives/directive"
	"github.com/shyptr/schemadirectives/errors"
	"github.com/shyptr/schemadirectives/schemabuilder"
	"gopkg.in/yaml.v2"
)

// Attachment adds directives to the member at Coordinate.
type Attachment struct {
	Coordinate string        `validate:"required"`
	Directives yaml.MapSlice `validate:"-"`
}

// Attachments is the content of an attachment file, in file order:
//
//	Widget:
//	  first: {arg: "yes"}
//	  second: ~
//	Widget.name:
//	  first: {arg: "yes"}
type Attachments []Attachment

// ParseAttachments decodes an attachment file.
func ParseAttachments(data []byte) (Attachments, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse attachments")
	}
	attachments := make(Attachments, 0, len(doc))
	for _, item := range doc {
		coordinate, ok := item.Key.(string)
		if !ok {
			return nil, errors.InvalidArgument("schema coordinate must be a string, got %T", item.Key)
		}
		var directives yaml.MapSlice
		switch value := item.Value.(type) {
		case nil:
		case yaml.MapSlice:
			directives = value
		default:
			return nil, errors.InvalidArgument("directives of %s must be a mapping, got %T", coordinate, item.Value)
		}
		attachment := Attachment{Coordinate: coordinate, Directives: directives}
		if err := NewValidate().Struct(attachment); err != nil {
			return nil, errors.Wrap(err, "attachment %q", coordinate)
		}
		attachments = append(attachments, attachment)
	}
	return attachments, nil
}

// Apply attaches every directive to s through its side table. Every
// coordinate and directive is checked first; when any of them is invalid the
// schema is left untouched and all problems are returned together.
func (a Attachments) Apply(s *schemabuilder.Schema) error {
	type pending struct {
		coordinate string
		usages     []directive.Usage
	}
	var errs errors.MultiError
	var resolved []pending
	for _, attachment := range a {
		if _, err := s.Member(attachment.Coordinate); err != nil {
			errs = append(errs, errors.Wrap(err, "attachment"))
			continue
		}
		usages, err := directive.Parse(attachment.Directives)
		if err != nil {
			errs = append(errs, errors.Wrap(err, "attachment %s", attachment.Coordinate))
			continue
		}
		resolved = append(resolved, pending{coordinate: attachment.Coordinate, usages: usages})
	}
	if err := errs.Err(); err != nil {
		return err
	}
	table := s.DirectiveTable()
	for _, p := range resolved {
		table.Attach(p.coordinate, p.usages...)
	}
	return nil
}
