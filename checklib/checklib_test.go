package checklib

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/compliance-tools/suitegen/types"
)

func TestFormatTemplate(t *testing.T) {
	tests := []struct {
		name   string
		tmpl   string
		params map[string]any
		want   string
	}{
		{
			name:   "single placeholder",
			tmpl:   "File size within {threshold}Mb",
			params: map[string]any{"threshold": 4},
			want:   "File size within 4Mb",
		},
		{
			name:   "repeated placeholder",
			tmpl:   "{attr} / {attr}",
			params: map[string]any{"attr": "license"},
			want:   "license / license",
		},
		{
			name:   "unknown placeholder left intact",
			tmpl:   "value is {missing}",
			params: map[string]any{"other": 1},
			want:   "value is {missing}",
		},
		{
			name:   "no placeholders",
			tmpl:   "plain text",
			params: map[string]any{"threshold": 4},
			want:   "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTemplate(tt.tmpl, tt.params))
		})
	}
}

func TestSpecOutOf(t *testing.T) {
	spec := Spec{MessageTemplates: []string{"a", "b", "c"}}
	assert.Equal(t, 3, spec.OutOf())
	assert.Equal(t, 0, Spec{}.OutOf())
}

func TestSpecSupports(t *testing.T) {
	spec := Spec{SupportedKinds: []string{types.DatasetKindFile}}
	assert.True(t, spec.Supports("file"))
	assert.False(t, spec.Supports("table"))
}

func TestCheckBaseResult(t *testing.T) {
	spec := Spec{
		ShortName:        "Check '{name}'",
		MessageTemplates: []string{"first {name} failed", "second {name} failed"},
	}
	base := NewCheckBase(spec, map[string]any{"name": "x"})

	t.Run("no failures scores full", func(t *testing.T) {
		out := base.Result()
		assert.Equal(t, 2, out.Score)
		assert.Equal(t, 2, out.OutOf)
		assert.Equal(t, "Check 'x'", out.Label)
		assert.Empty(t, out.Messages)
	})

	t.Run("each failure loses a point and formats its template", func(t *testing.T) {
		out := base.Result(1)
		assert.Equal(t, 1, out.Score)
		assert.Equal(t, []string{"second x failed"}, out.Messages)
	})

	t.Run("all failures scores zero", func(t *testing.T) {
		out := base.Result(0, 1)
		assert.Equal(t, 0, out.Score)
		assert.Len(t, out.Messages, 2)
	})

	t.Run("out of range failure indices are ignored", func(t *testing.T) {
		out := base.Result(-1, 5)
		assert.Equal(t, 2, out.Score)
		assert.Empty(t, out.Messages)
	})
}

func TestFileErrorMessage(t *testing.T) {
	err := &FileError{Path: "/data/x.csv", Err: assert.AnError}
	assert.Contains(t, err.Error(), "/data/x.csv")
	assert.ErrorIs(t, err, assert.AnError)
}
