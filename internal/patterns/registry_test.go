package patterns

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/rampx/cli/internal/errors"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ProjectType
		wantErr bool
	}{
		{"flutter", "flutter", Flutter, false},
		{"laravel", "laravel", Laravel, false},
		{"node", "node", Node, false},
		{"case-sensitive", "Node", "", true},
		{"unknown", "rails", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				assert.Contains(t, err.Error(), "flutter, laravel, node")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypes(t *testing.T) {
	assert.Equal(t, []ProjectType{Laravel, Flutter, Node}, Types())
	assert.Equal(t, []string{"flutter", "laravel", "node"}, TypeNames())

	// Mutating the result must not leak into the package table.
	types := Types()
	types[0] = "mutated"
	assert.Equal(t, Laravel, Types()[0])
}

func TestDefault_Keys(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"standard", "feature", "ddd"}, r.Keys(Laravel))
	assert.Equal(t, []string{"layered", "feature", "clean"}, r.Keys(Flutter))
	assert.Equal(t, []string{"simple", "modular", "clean"}, r.Keys(Node))
	assert.Same(t, r, Default())
}

func TestDefault_OneRecommendedPerType(t *testing.T) {
	r := Default()
	for _, typ := range Types() {
		count := 0
		for _, p := range r.List(typ) {
			assert.Equal(t, typ, p.Type)
			assert.NotEmpty(t, p.Label)
			assert.NotEmpty(t, p.Description)
			assert.NotEmpty(t, p.Structure)
			if p.Recommended {
				count++
			}
		}
		assert.LessOrEqual(t, count, 1, "type %s", typ)
	}
}

func TestRecommended(t *testing.T) {
	r := Default()
	tests := []struct {
		typ  ProjectType
		want string
	}{
		{Laravel, "feature"},
		{Flutter, "feature"},
		{Node, "modular"},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			p, ok := r.Recommended(tt.typ)
			require.True(t, ok)
			assert.Equal(t, tt.want, p.Key)
		})
	}
}

func TestRecommended_FallsBackToFirst(t *testing.T) {
	r := New(
		Pattern{Type: Node, Key: "a", Label: "A"},
		Pattern{Type: Node, Key: "b", Label: "B"},
	)

	p, ok := r.Recommended(Node)
	require.True(t, ok)
	assert.Equal(t, "a", p.Key)

	_, ok = r.Recommended(Flutter)
	assert.False(t, ok)
}

func TestFirst(t *testing.T) {
	r := Default()
	p, ok := r.First(Node)
	require.True(t, ok)
	assert.Equal(t, "simple", p.Key)

	p, ok = r.First(Laravel)
	require.True(t, ok)
	assert.Equal(t, "standard", p.Key)
}

func TestList_ReturnsCopy(t *testing.T) {
	r := Default()
	first := r.List(Flutter)
	first[0].Key = "mutated"

	second := r.List(Flutter)
	assert.Equal(t, "layered", second[0].Key)
}

func TestLookup(t *testing.T) {
	r := Default()

	p, err := r.Lookup(Node, "clean")
	require.NoError(t, err)
	assert.Equal(t, "Clean Architecture", p.Label)

	_, err = r.Lookup(Node, "hexagonal")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))

	var detail *oerrors.DetailError
	require.True(t, errors.As(err, &detail))
	assert.Contains(t, detail.Hint, "simple - Flat structure for small projects and APIs")
	assert.Contains(t, detail.Hint, "modular")
	assert.Contains(t, detail.Hint, "clean")
}

func TestNew_Panics(t *testing.T) {
	t.Run("duplicate key", func(t *testing.T) {
		assert.Panics(t, func() {
			New(
				Pattern{Type: Node, Key: "simple"},
				Pattern{Type: Node, Key: "simple"},
			)
		})
	})

	t.Run("two recommended", func(t *testing.T) {
		assert.Panics(t, func() {
			New(
				Pattern{Type: Node, Key: "a", Recommended: true},
				Pattern{Type: Node, Key: "b", Recommended: true},
			)
		})
	})

	t.Run("unknown type", func(t *testing.T) {
		assert.Panics(t, func() {
			New(Pattern{Type: "rails", Key: "mvc"})
		})
	})

	t.Run("same key across types is fine", func(t *testing.T) {
		assert.NotPanics(t, func() {
			New(
				Pattern{Type: Node, Key: "clean"},
				Pattern{Type: Flutter, Key: "clean"},
			)
		})
	})
}
