package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"articles_api/models"
)

func TestParseTagList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a, b", []string{"a", "b"}},
		{" go ,, sql,go ", []string{"go", "sql"}},
		{"Go,go", []string{"Go", "go"}},
		{"", []string{}},
		{" , ", []string{}},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ParseTagList(c.in), c.in)
	}
}

func TestFilterByTags(t *testing.T) {
	a := models.Article{ID: 1, Tags: []models.Tag{{ID: 1, Name: "a"}}}
	b := models.Article{ID: 2, Tags: []models.Tag{{ID: 2, Name: "b"}}}
	ab := models.Article{ID: 3, Tags: []models.Tag{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}}
	none := models.Article{ID: 4, Tags: []models.Tag{}}
	all := []models.Article{a, b, ab, none}

	t.Run("or semantics", func(t *testing.T) {
		got := FilterByTags("a,c", all)
		require.Equal(t, []models.Article{a, ab}, got)
	})

	t.Run("multiple matches keep order", func(t *testing.T) {
		got := FilterByTags("b, a", all)
		require.Equal(t, []models.Article{a, b, ab}, got)
	})

	t.Run("exact match only", func(t *testing.T) {
		require.Empty(t, FilterByTags("A", all))
	})

	t.Run("blank filter keeps everything", func(t *testing.T) {
		require.Equal(t, all, FilterByTags(" ", all))
	})
}
