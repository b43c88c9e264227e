// Package entitlement описывает премиум-доступ и ограничения бесплатной версии.
package entitlement

import (
	"errors"
	"fmt"

	"github.com/shenikar/dont_forget_tracker/internal/catalog"
)

var (
	ErrItemLimitReached = errors.New("free item limit reached")
	ErrCustomDistance   = errors.New("custom alert distance requires premium")
)

// Policy - правила бесплатной версии: лимит предметов и набор стандартных радиусов
type Policy struct {
	catalog       *catalog.Catalog
	freeItemLimit int
}

func NewPolicy(cat *catalog.Catalog, freeItemLimit int) *Policy {
	return &Policy{
		catalog:       cat,
		freeItemLimit: freeItemLimit,
	}
}

func (p *Policy) FreeItemLimit() int {
	return p.freeItemLimit
}

// DefaultDistance - радиус, предлагаемый вместо пользовательского
func (p *Policy) DefaultDistance() float64 {
	return p.catalog.DefaultDistance
}

// CanAddItem проверяет лимит предметов для новой записи
func (p *Policy) CanAddItem(premium bool, currentCount int) error {
	if premium || currentCount < p.freeItemLimit {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrItemLimitReached, p.ItemLimitMessage(currentCount))
}

// CheckDistance разрешает бесплатным пользователям только стандартные радиусы
func (p *Policy) CheckDistance(premium bool, meters float64) error {
	if premium || p.catalog.IsStandardDistance(meters) {
		return nil
	}
	return fmt.Errorf("%w: use %.0fm or upgrade to set any distance", ErrCustomDistance, p.catalog.DefaultDistance)
}

// ItemLimitMessage - текст для пользователя о лимите бесплатной версии
func (p *Policy) ItemLimitMessage(currentCount int) string {
	remaining := p.freeItemLimit - currentCount
	if remaining <= 0 {
		return fmt.Sprintf("You've reached your %d-item limit! Upgrade to Premium for unlimited items.", p.freeItemLimit)
	}
	return fmt.Sprintf("%d items remaining in free version.", remaining)
}
