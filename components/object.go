package components

import (
	"github.com/automoto/fireflower/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect snapshots the collision box for point and overlap tests.
func (o *ObjectData) Rect() gamemath.Rect {
	return RectOf(o.Object)
}

// RectOf converts a resolv object to its bounding rectangle.
func RectOf(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func (o *ObjectData) Bottom() float64 {
	return o.Y + o.H
}

// SetBottom moves the object so its bottom edge sits at y.
func (o *ObjectData) SetBottom(y float64) {
	o.Y = y - o.H
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
