package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	templates := All()

	require.Len(t, templates, 20)
	assert.True(t, sort.SliceIsSorted(templates, func(i, j int) bool {
		return templates[i].ID < templates[j].ID
	}))
	for _, tmpl := range templates {
		assert.NotEmpty(t, tmpl.Name, tmpl.ID)
		assert.NotEmpty(t, tmpl.Colors.Primary, tmpl.ID)
		assert.NotEmpty(t, tmpl.Fonts.Body, tmpl.ID)
		assert.GreaterOrEqual(t, tmpl.ATSScore, 0, tmpl.ID)
		assert.LessOrEqual(t, tmpl.ATSScore, 100, tmpl.ID)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0].Name = "mutated"

	assert.NotEqual(t, "mutated", All()[0].Name)
}

func TestLookup(t *testing.T) {
	tmpl, ok := Lookup("ivy-league")
	require.True(t, ok)
	assert.Equal(t, "Ivy League", tmpl.Name)
	assert.Equal(t, "academic", tmpl.Category)
	assert.Equal(t, 95, tmpl.ATSScore)
	assert.Equal(t, "#1e3a5f", tmpl.Colors.Primary)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestGet_FallsBackToModern(t *testing.T) {
	tmpl := Get("nope")
	assert.Equal(t, DefaultTemplateID, tmpl.ID)

	assert.Equal(t, "classic", Get("classic").ID)
}

func TestGet_LogoStyles(t *testing.T) {
	assert.True(t, Get("elegant-logos").Styles.ShowLogos)
	assert.False(t, Get("elegant").Styles.ShowLogos)
}

func TestByCategory(t *testing.T) {
	assert.Equal(t, All(), ByCategory(AllCategory))

	academic := ByCategory("academic")
	require.Len(t, academic, 2)
	assert.Equal(t, "ivy-league", academic[0].ID)
	assert.Equal(t, "ivy-league-logos", academic[1].ID)

	assert.Empty(t, ByCategory("unknown"))
	assert.NotNil(t, ByCategory("unknown"))
}

func TestByCategory_CoversEveryTemplate(t *testing.T) {
	total := 0
	for _, cat := range Categories() {
		if cat.ID == AllCategory {
			continue
		}
		total += len(ByCategory(cat.ID))
	}
	assert.Equal(t, len(All()), total)
}

func TestCategories(t *testing.T) {
	cats := Categories()

	require.Len(t, cats, 7)
	assert.Equal(t, AllCategory, cats[0].ID)
	assert.Equal(t, "executive", cats[6].ID)
}

func TestParse_Errors(t *testing.T) {
	_, err := parse([]byte("{"))
	assert.Error(t, err)

	_, err = parse([]byte(`{"templates":[{"id":"a"},{"id":"a"}]}`))
	assert.ErrorContains(t, err, "duplicate")

	_, err = parse([]byte(`{"templates":[{"id":"a"}]}`))
	assert.ErrorContains(t, err, "default template")
}
