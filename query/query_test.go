package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() map[string]any {
	return map[string]any{
		"generated_at": "2024-05-01T10:00:00+00:00",
		"competitions": []any{
			map[string]any{
				"id":       "sr:competition:17",
				"name":     "Premier League",
				"gender":   "men",
				"category": map[string]any{"name": "England"},
			},
			map[string]any{
				"id":       "sr:competition:8",
				"name":     "LaLiga",
				"gender":   "men",
				"category": map[string]any{"name": "Spain"},
			},
			map[string]any{
				"id":       "sr:competition:1711",
				"name":     "Women's Super League",
				"gender":   "women",
				"category": map[string]any{"name": "England"},
			},
		},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `len(competitions) > 0`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `filter(competitions, .name ==`,
			wantErr:    true,
		},
		{
			name:       "helpers",
			expression: `containsFold(field(doc, "competitions.0.name"), "premier")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewCompiler().Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, q)
		})
	}
}

func TestQuery_Run(t *testing.T) {
	doc := testDocument()

	tests := []struct {
		name       string
		expression string
		expected   any
	}{
		{
			name:       "count",
			expression: `len(competitions)`,
			expected:   3,
		},
		{
			name:       "project names",
			expression: `map(competitions, .name)`,
			expected:   []any{"Premier League", "LaLiga", "Women's Super League"},
		},
		{
			name:       "filter by nested field",
			expression: `map(filter(competitions, .category.name == "England"), .id)`,
			expected:   []any{"sr:competition:17", "sr:competition:1711"},
		},
		{
			name:       "dotted path",
			expression: `field(doc, "competitions.1.category.name")`,
			expected:   "Spain",
		},
		{
			name:       "dotted path out of range",
			expression: `field(doc, "competitions.9.name")`,
			expected:   nil,
		},
		{
			name:       "missing key",
			expression: `doc.seasons`,
			expected:   nil,
		},
		{
			name:       "timestamps",
			expression: `daysSince(parseTime(generated_at)) > 30`,
			expected:   true,
		},
	}

	compiler := NewCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := compiler.Compile(tt.expression)
			require.NoError(t, err)

			out, err := q.Run(doc)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestQuery_RunError(t *testing.T) {
	q, err := NewCompiler().Compile(`int("not a number")`)
	require.NoError(t, err)

	_, err = q.Run(testDocument())
	require.Error(t, err)
	var evalErr *EvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, `int("not a number")`, evalErr.Expression)
}

func TestQuery_Match(t *testing.T) {
	compiler := NewCompiler()

	q, err := compiler.Compile(`any(competitions, .gender == "women")`)
	require.NoError(t, err)
	matched, err := q.Match(testDocument())
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = q.Match(map[string]any{"competitions": []any{}})
	require.NoError(t, err)
	assert.False(t, matched)

	q, err = compiler.Compile(`len(competitions)`)
	require.NoError(t, err)
	_, err = q.Match(testDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a boolean")
}

func TestCompiler_Cache(t *testing.T) {
	t.Run("reuses compiled queries", func(t *testing.T) {
		c := NewCompiler()
		first, err := c.Compile(`len(competitions)`)
		require.NoError(t, err)
		second, err := c.Compile(`  len(competitions)  `)
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, 1, c.Size())

		c.Clear()
		assert.Equal(t, 0, c.Size())
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		c := NewCompiler(WithCache(2))
		a, _ := c.Compile(`1`)
		b, _ := c.Compile(`2`)
		_, _ = c.Compile(`1`)
		_, _ = c.Compile(`3`)
		assert.Equal(t, 2, c.Size())

		again, _ := c.Compile(`1`)
		assert.Same(t, a, again)
		evicted, _ := c.Compile(`2`)
		assert.NotSame(t, b, evicted)
	})

	t.Run("disabled", func(t *testing.T) {
		c := NewCompiler(WithCache(0))
		first, err := c.Compile(`true`)
		require.NoError(t, err)
		second, err := c.Compile(`true`)
		require.NoError(t, err)
		assert.NotSame(t, first, second)
		assert.Equal(t, 0, c.Size())
	})
}

func TestWithFunctions(t *testing.T) {
	c := NewCompiler(WithFunctions(map[string]any{
		"isSoccer": func(id string) bool { return len(id) > 15 && id[:15] == "sr:competition:" },
	}))

	q, err := c.Compile(`all(competitions, isSoccer(.id))`)
	require.NoError(t, err)
	matched, err := q.Match(testDocument())
	require.NoError(t, err)
	assert.True(t, matched)
}
