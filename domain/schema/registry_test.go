package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"murshid/domain/core"
	"murshid/domain/record"
)

func TestDefaultRegistryLookup(t *testing.T) {
	r := Default()

	f, err := r.Field(record.FieldGender)
	assert.NoError(t, err)
	assert.Equal(t, KindSelect, f.Kind)
	assert.Equal(t, []string{record.GenderMale, record.GenderFemale}, f.Options)

	_, err = r.Field("حقل غير موجود")
	assert.ErrorIs(t, err, core.ErrUnknownField)
	assert.False(t, r.Has("حقل غير موجود"))
}

func TestDependencyResolution(t *testing.T) {
	r := Default()

	dep, ok := r.DependencyOf(record.FieldIssueKinds)
	assert.True(t, ok)
	assert.Equal(t, record.FieldHasIssue, dep.Governor)
	assert.Equal(t, record.AnswerYes, dep.RequiredValue)

	_, ok = r.DependencyOf(record.FieldFullName)
	assert.False(t, ok)
}

func TestVisible(t *testing.T) {
	r := Default()

	withIssue := record.FromRaw(map[string]interface{}{record.FieldHasIssue: record.AnswerYes})
	without := record.FromRaw(map[string]interface{}{record.FieldHasIssue: record.AnswerNo})
	unanswered := record.Student{}

	assert.True(t, r.Visible(withIssue, record.FieldIssueKinds))
	assert.False(t, r.Visible(without, record.FieldIssueKinds))
	assert.False(t, r.Visible(unanswered, record.FieldIssueKinds))

	// ungoverned fields are always visible
	assert.True(t, r.Visible(unanswered, record.FieldFullName))
}

func TestFilterableFieldsOrder(t *testing.T) {
	r := Default()

	fields := r.FilterableFields()
	assert.NotEmpty(t, fields)
	for _, f := range fields {
		assert.True(t, f.Filterable)
	}

	// the panel keeps form order, so gender comes before the follow-up section
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, record.FieldGender, names[0])
	assert.Contains(t, names, record.FieldHasIssue)
}
