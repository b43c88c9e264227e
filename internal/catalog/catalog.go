// Package catalog описывает справочник иконок и стандартные радиусы оповещения.
package catalog

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// FallbackIcon показывается для неизвестного iconId
const FallbackIcon = "ellipse-outline"

// Icon - элемент справочника иконок
type Icon struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Catalog - справочник иконок и предустановленных радиусов
type Catalog struct {
	Icons             []Icon    `yaml:"icons"`
	StandardDistances []float64 `yaml:"standard_distances"`
	DefaultDistance   float64   `yaml:"default_distance"`
}

// Default возвращает встроенный справочник
func Default() *Catalog {
	return &Catalog{
		Icons: []Icon{
			{ID: "key", Name: "key-outline"},
			{ID: "wallet", Name: "wallet-outline"},
			{ID: "sunglasses", Name: "glasses-outline"},
			{ID: "smartphone", Name: "phone-portrait-outline"},
			{ID: "headphones", Name: "headset-outline"},
			{ID: "briefcase", Name: "briefcase-outline"},
			{ID: "car", Name: "car-outline"},
			{ID: "home", Name: "home-outline"},
			{ID: "package", Name: "cube-outline"},
			{ID: "watch", Name: "watch-outline"},
		},
		StandardDistances: []float64{25, 50, 100, 200},
		DefaultDistance:   50,
	}
}

// Load читает YAML-файл поверх встроенного справочника. Пустой путь - встроенный справочник.
func Load(path string) (*Catalog, error) {
	cat := Default()
	if path == "" {
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: could not read %s: %w", path, err)
	}

	var overlay Catalog
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("catalog: could not parse %s: %w", path, err)
	}

	if len(overlay.Icons) > 0 {
		cat.Icons = overlay.Icons
	}
	if len(overlay.StandardDistances) > 0 {
		cat.StandardDistances = overlay.StandardDistances
	}
	if overlay.DefaultDistance > 0 {
		cat.DefaultDistance = overlay.DefaultDistance
	}

	if !cat.IsStandardDistance(cat.DefaultDistance) {
		return nil, fmt.Errorf("catalog: default distance %.0f is not one of the standard distances", cat.DefaultDistance)
	}
	return cat, nil
}

// IconName возвращает имя иконки по идентификатору
func (c *Catalog) IconName(iconID string) string {
	for _, icon := range c.Icons {
		if icon.ID == iconID {
			return icon.Name
		}
	}
	return FallbackIcon
}

func (c *Catalog) HasIcon(iconID string) bool {
	return slices.ContainsFunc(c.Icons, func(icon Icon) bool { return icon.ID == iconID })
}

// IsStandardDistance сообщает, доступен ли радиус бесплатным пользователям
func (c *Catalog) IsStandardDistance(meters float64) bool {
	return slices.Contains(c.StandardDistances, meters)
}
