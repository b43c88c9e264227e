package models

import "github.com/google/uuid"

// NotifiedSet - идентификаторы предметов, по которым уже отправлен алерт "away"
// с момента последнего возвращения в радиус.
type NotifiedSet map[uuid.UUID]struct{}

func NewNotifiedSet(ids ...uuid.UUID) NotifiedSet {
	s := make(NotifiedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s NotifiedSet) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// Clone копирует множество; nil превращается в пустое множество
func (s NotifiedSet) Clone() NotifiedSet {
	out := make(NotifiedSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}
