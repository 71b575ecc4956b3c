package config

import "fmt"

// ItemKind tags a power-up. The values match the item property used in the
// level files.
type ItemKind string

const (
	Mushroom   ItemKind = "mushroom"
	ExtraLife  ItemKind = "1-up"
	FireFlower ItemKind = "fire-flower"
	StarMan    ItemKind = "starman"
)

// ItemKinds lists every power-up in spawn-table order.
var ItemKinds = []ItemKind{Mushroom, ExtraLife, FireFlower, StarMan}

func (k ItemKind) String() string {
	return string(k)
}

// ParseItemKind validates a kind read from a level or config file.
func ParseItemKind(s string) (ItemKind, error) {
	for _, k := range ItemKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown item kind %q", s)
}
