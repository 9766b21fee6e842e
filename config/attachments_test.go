package config_test

import (
	"testing"

	"github.com/shyptr/schemadirectives/config"
	"github.com/shyptr/schemadirectives/errors"
	"github.com/shyptr/schemadirectives/schemabuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const attachmentsYAML = `
Widget:
  first: {arg: "yes"}
  second: ~
Widget.name:
  first: {arg: "no"}
Status.OKAY:
  first: {arg: "okay", weight: 2}
`

func schema(t *testing.T) *schemabuilder.Schema {
	s := schemabuilder.NewSchema()
	widget, err := s.Object("Widget")
	require.NoError(t, err)
	_, err = widget.Field("name", schemabuilder.String)
	require.NoError(t, err)
	status, err := s.Enum("Status")
	require.NoError(t, err)
	_, err = status.Value("OKAY")
	require.NoError(t, err)
	return s
}

func TestParseAttachments(t *testing.T) {
	t.Run("file order is kept", func(t *testing.T) {
		attachments, err := config.ParseAttachments([]byte(attachmentsYAML))
		require.NoError(t, err)
		require.Len(t, attachments, 3)
		assert.Equal(t, "Widget", attachments[0].Coordinate)
		assert.Equal(t, "Widget.name", attachments[1].Coordinate)
		assert.Equal(t, "Status.OKAY", attachments[2].Coordinate)
		assert.Equal(t, "first", attachments[0].Directives[0].Key)
		assert.Equal(t, "second", attachments[0].Directives[1].Key)
	})

	t.Run("empty coordinate entry", func(t *testing.T) {
		attachments, err := config.ParseAttachments([]byte("Widget: ~\n"))
		require.NoError(t, err)
		require.Len(t, attachments, 1)
		assert.Empty(t, attachments[0].Directives)
	})

	t.Run("invalid files", func(t *testing.T) {
		for name, data := range map[string]string{
			"not yaml":          "Widget: [",
			"non-mapping value": "Widget: first\n",
			"list value":        "Widget:\n  - first\n",
			"non-string key":    "1: {first: ~}\n",
			"empty key":         "\"\": {first: ~}\n",
		} {
			_, err := config.ParseAttachments([]byte(data))
			assert.Error(t, err, name)
		}
	})
}

func TestAttachmentsApply(t *testing.T) {
	t.Run("attaches to the side table", func(t *testing.T) {
		s := schema(t)
		attachments, err := config.ParseAttachments([]byte(attachmentsYAML))
		require.NoError(t, err)
		require.NoError(t, attachments.Apply(s))

		table := s.DirectiveTable()
		assert.Equal(t, []string{"Status.OKAY", "Widget", "Widget.name"}, table.Keys())
		widget := table.Directives("Widget")
		require.Len(t, widget, 2)
		assert.Equal(t, "first", widget[0].Name)
		assert.Equal(t, "yes", widget[0].Arguments[0].Value.Raw)
		assert.Equal(t, "second", widget[1].Name)
		assert.Nil(t, widget[1].Arguments)

		okay := table.Directives("Status.OKAY")
		require.Len(t, okay[0].Arguments, 2)
		assert.Equal(t, "weight", okay[0].Arguments[1].Name)
	})

	t.Run("nothing is attached when any entry is invalid", func(t *testing.T) {
		s := schema(t)
		attachments, err := config.ParseAttachments([]byte(`
Widget:
  first: {arg: "yes"}
Widget.size:
  first: ~
Status.OKAY:
  first: "not a mapping"
`))
		require.NoError(t, err)
		err = attachments.Apply(s)
		require.Error(t, err)

		var multi errors.MultiError
		require.True(t, errors.As(err, &multi))
		assert.Len(t, multi, 2)
		assert.True(t, errors.Is(multi[0], errors.ErrInvalidArgument))
		assert.True(t, errors.Is(multi[1], errors.ErrInvalidArgument))
		assert.Empty(t, s.DirectiveTable().Keys())
	})
}
