package geom

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/polydraw/polydraw/dbg"
)

func (t *PolygonTree) String() string {
	var parts []string
	for _, child := range t.Children {
		parts = append(parts, child.DbgName())
	}
	return fmt.Sprintf("PolygonTree %s (%d points) <children: [%s]>",
		t.DbgName(), len(t.Outer.Points), strings.Join(parts, ", "))
}

func (t *PolygonTree) DbgName() string {
	name := dbg.Name(t)
	if len(t.Outer.Points) < 3 { // degenerate ring
		name = aurora.Red(name).String()
	} else if len(t.Children) > 0 {
		name = aurora.Cyan(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}
