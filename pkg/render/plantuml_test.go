package render

import (
	"slices"
	"strings"
	"testing"

	"github.com/localgod/plantkit/pkg/diagram"
	"github.com/localgod/plantkit/pkg/model"
)

func entity(name, typ, label string, children ...*model.Entity) *model.Entity {
	e := model.NewEntity(name, model.Properties{Type: typ, Label: label})
	for _, c := range children {
		e.AddChild(c)
	}
	return e
}

func TestEntity_Leaf(t *testing.T) {
	tests := []struct {
		name  string
		e     *model.Entity
		depth int
		want  string
	}{
		{"typed", entity("CRM", "Application_Component", "Customer Relations"), 0,
			`Application_Component(ID_crm, "Customer Relations")`},
		{"indented", entity("CRM", "Application_Component", "CRM"), 2,
			`    Application_Component(ID_crm, "CRM")`},
		{"untyped", entity("Bare", "", ""), 0, `(ID_bare, "")`},
		{"quoted label", entity("q", "Node", `say "hi"`), 0, `Node(ID_q, "say 'hi'")`},
		{"empty name", entity("", "Node", "x"), 0, `Node(ID_element, "x")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Entity(tt.e, tt.depth); got != tt.want {
				t.Errorf("Entity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntity_UntypedRootWithChildren(t *testing.T) {
	root := entity("root", "", "",
		entity("first", "Node", "First"),
		entity("second", "Node", "Second"),
	)

	want := strings.Join([]string{
		`(ID_root, "") {`,
		`  Node(ID_first, "First")`,
		`  Node(ID_second, "Second")`,
		`}`,
	}, "\n")

	if got := Entity(root, 0); got != want {
		t.Errorf("Entity() =\n%s\nwant:\n%s", got, want)
	}
}

func TestEntity_ChildOrderAndIndentation(t *testing.T) {
	c1 := entity("c1", "Node", "one", entity("g1", "Device", "grand"))
	c2 := entity("c2", "Node", "two")
	root := entity("root", "Grouping", "Root", c1, c2)

	got := Entity(root, 1)
	want := strings.Join([]string{
		`  Grouping(ID_root, "Root") {`,
		`    Node(ID_c1, "one") {`,
		`      Device(ID_g1, "grand")`,
		`    }`,
		`    Node(ID_c2, "two")`,
		`  }`,
	}, "\n")
	if got != want {
		t.Fatalf("Entity() =\n%s\nwant:\n%s", got, want)
	}

	r1 := Entity(c1, 2)
	r2 := Entity(c2, 2)
	i1, i2 := strings.Index(got, r1), strings.Index(got, r2)
	if i1 < 0 || i2 < 0 || i1 >= i2 {
		t.Errorf("child renders not found in order: %d, %d", i1, i2)
	}
}

func TestRelations(t *testing.T) {
	a, b, c := entity("A", "Node", ""), entity("B", "Node", ""), entity("C", "Node", "")
	g := model.NewGraph()
	for _, n := range []*model.Entity{a, b, c} {
		g.AddNode(n)
	}
	mustRelate(t, g, a, b, "Rel_Flow", &model.Properties{Label: "data"})
	mustRelate(t, g, b, c, "Rel_Serving", nil)

	want := "Rel_Flow(ID_a, ID_b, \"data\")\nRel_Serving(ID_b, ID_c, \"\")"
	if got := Relations(g); got != want {
		t.Errorf("Relations() =\n%s\nwant:\n%s", got, want)
	}

	if got := Relations(model.NewGraph()); got != "" {
		t.Errorf("Relations(empty) = %q, want empty", got)
	}
}

func TestTypes(t *testing.T) {
	root := entity("r", "Grouping", "", entity("x", "Node", ""), entity("y", "", ""), entity("z", "Node", ""))
	other := entity("o", "Device", "")

	g := model.NewGraph()
	g.AddNode(root)
	g.AddNode(other)
	mustRelate(t, g, root, other, "Rel_Flow", nil)
	mustRelate(t, g, other, root, "Rel_Flow", nil)
	mustRelate(t, g, other, root, "", nil)

	ets, rts := Types([]*model.Entity{root}, g)
	if want := []string{"Grouping", "Node", "Device"}; !slices.Equal(ets, want) {
		t.Errorf("entity types = %v, want %v", ets, want)
	}
	if want := []string{"Rel_Flow"}; !slices.Equal(rts, want) {
		t.Errorf("relation types = %v, want %v", rts, want)
	}

	ets, rts = Types([]*model.Entity{root}, nil)
	if len(ets) != 2 || rts != nil {
		t.Errorf("Types(nil graph) = %v, %v", ets, rts)
	}
}

func TestPopulate(t *testing.T) {
	crm := entity("CRM", "Application_Component", "CRM")
	erp := entity("ERP", "Application_Component", "ERP")
	g := model.NewGraph()
	g.AddNode(crm)
	g.AddNode(erp)
	mustRelate(t, g, crm, erp, "Rel_Flow", &model.Properties{Label: "orders"})

	doc := diagram.New("apps", "Apps")
	Populate(doc, []*model.Entity{crm, erp}, g)

	body := doc.Body()
	if len(body) != 3 {
		t.Fatalf("body blocks = %d, want 3", len(body))
	}
	if body[2] != `Rel_Flow(ID_crm, ID_erp, "orders")` {
		t.Errorf("relation block = %q", body[2])
	}

	var aliases []string
	for _, s := range doc.Sprites() {
		aliases = append(aliases, s.Alias)
	}
	if want := []string{"Application_Component_Sprite", "Flow_Sprite"}; !slices.Equal(aliases, want) {
		t.Errorf("sprites = %v, want %v", aliases, want)
	}
}

func TestPopulate_NoRelations(t *testing.T) {
	doc := diagram.New("", "")
	Populate(doc, []*model.Entity{entity("a", "", "")}, model.NewGraph())

	if len(doc.Body()) != 1 {
		t.Errorf("body blocks = %d, want 1", len(doc.Body()))
	}
	if len(doc.Sprites()) != 0 {
		t.Errorf("sprites = %v, want none for untyped entities", doc.Sprites())
	}
}

func mustRelate(t *testing.T, g *model.Graph, src, dst *model.Entity, typ string, props *model.Properties) {
	t.Helper()
	if err := g.AddRelation(src, dst, typ, props); err != nil {
		t.Fatalf("AddRelation: %v", err)
	}
}
