package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/drawgen/compiler/graph"
	"github.com/syssam/drawgen/compiler/label"
)

// newGraph builds a graph from class names (used as ids too) and relations.
func newGraph(classes []string, relations ...*graph.Relation) *graph.Graph {
	g := graph.New()
	for _, c := range classes {
		g.AddEntity(&graph.Entity{ID: c, ClassName: c, Value: c})
	}
	for _, r := range relations {
		g.AddRelation(r)
	}
	return g
}

func assoc(id, from, to, lbl string) *graph.Relation {
	return &graph.Relation{ID: id, Source: from, Target: to, Kind: graph.Association, Label: lbl}
}

func extends(id, from, to string) *graph.Relation {
	return &graph.Relation{ID: id, Source: from, Target: to, Kind: graph.Specialization}
}

func TestResolve(t *testing.T) {
	grammar := label.New()

	t.Run("has collection", func(t *testing.T) {
		defs, err := Resolve(newGraph([]string{"Customer", "Order"},
			assoc("e", "Customer", "Order", "has (N)"),
		), grammar, nil)
		require.NoError(t, err)
		require.Len(t, defs, 2)

		assert.Equal(t, &ClassDefinition{
			Name:            "Customer",
			Fields:          []*Field{{Name: "orders", Type: "Order", Collection: true}},
			NeedsCollection: true,
		}, defs[0])
		assert.Equal(t, &ClassDefinition{Name: "Order"}, defs[1])
	})

	t.Run("specialization", func(t *testing.T) {
		defs, err := Resolve(newGraph([]string{"Animal", "Dog"},
			extends("e", "Dog", "Animal"),
		), grammar, nil)
		require.NoError(t, err)
		assert.Equal(t, &ClassDefinition{Name: "Animal"}, defs[0])
		assert.Equal(t, &ClassDefinition{Name: "Dog", Superclass: "Animal"}, defs[1])
		assert.True(t, defs[1].HasSuperclass())
		assert.False(t, defs[0].HasSuperclass())
	})

	t.Run("field naming", func(t *testing.T) {
		defs, err := Resolve(newGraph([]string{"Team", "Person", "OrderItem"},
			assoc("1", "Team", "Person", "manager (1)"),
			assoc("2", "Team", "Person", "members (N)"),
			assoc("3", "Team", "Person", "owner (N)"),
			assoc("4", "Team", "OrderItem", "HAS (1)"),
			assoc("5", "Team", "Person", "Has(N)"),
			assoc("6", "Team", "Person", "manager (1)"),
		), grammar, nil)
		require.NoError(t, err)
		assert.Equal(t, []*Field{
			{Name: "manager", Type: "Person"},
			{Name: "members", Type: "Person", Collection: true},
			{Name: "owners", Type: "Person", Collection: true},
			{Name: "orderItem", Type: "OrderItem"},
			{Name: "persons", Type: "Person", Collection: true},
			{Name: "manager", Type: "Person"},
		}, defs[0].Fields)
		assert.True(t, defs[0].NeedsCollection)
	})

	t.Run("singular only does not need a collection", func(t *testing.T) {
		defs, err := Resolve(newGraph([]string{"A", "B"}, assoc("1", "A", "B", "b (1)")), grammar, nil)
		require.NoError(t, err)
		assert.False(t, defs[0].NeedsCollection)
	})

	t.Run("last superclass wins", func(t *testing.T) {
		defs, err := Resolve(newGraph([]string{"A", "B", "C"},
			extends("1", "C", "A"),
			extends("2", "C", "B"),
		), grammar, nil)
		require.NoError(t, err)
		assert.Equal(t, "B", defs[2].Superclass)
	})

	t.Run("inflect pluralizer", func(t *testing.T) {
		defs, err := Resolve(newGraph([]string{"Shop", "Category"},
			assoc("1", "Shop", "Category", "has (N)"),
		), grammar, InflectPluralizer)
		require.NoError(t, err)
		assert.Equal(t, "categories", defs[0].Fields[0].Name)
	})

	t.Run("unvalidated label", func(t *testing.T) {
		_, err := Resolve(newGraph([]string{"A", "B"}, assoc("e9", "A", "B", "bogus")), grammar, nil)
		require.Error(t, err)
		assert.True(t, IsGenerationError(err))
		assert.Contains(t, err.Error(), "e9")
	})
}

func TestPluralizers(t *testing.T) {
	assert.Equal(t, "categorys", SimplePluralizer.Plural("category"))
	assert.Equal(t, "categories", InflectPluralizer.Plural("category"))
	assert.Equal(t, "people", InflectPluralizer.Plural("person"))
	assert.Equal(t, "items", InflectPluralizer.Plural(""))

	p, err := NewPluralizer("")
	require.NoError(t, err)
	assert.Equal(t, "orders", p.Plural("order"))

	p, err = NewPluralizer(PluralizerInflect)
	require.NoError(t, err)
	assert.Equal(t, "boxes", p.Plural("box"))

	_, err = NewPluralizer("latin")
	assert.True(t, IsConfigError(err))
}
