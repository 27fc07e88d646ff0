package session

import "slices"

// collection - кеш одной коллекции записей внутри сессии
type collection[T any] struct {
	name  string
	state State
	items []T
	// cause - причина перехода в режим только-сессии
	cause error
	// lastID - последний выданный id, локальные id продолжают эту последовательность
	lastID int64
	idOf   func(T) int64
}

func newCollection[T any](name string, idOf func(T) int64) *collection[T] {
	return &collection[T]{name: name, idOf: idOf, items: make([]T, 0)}
}

// replace заменяет кеш целиком результатом чтения из хранилища
func (c *collection[T]) replace(items []T) {
	c.items = make([]T, 0, len(items))
	c.items = append(c.items, items...)
	for _, item := range items {
		c.track(c.idOf(item))
	}
}

func (c *collection[T]) track(id int64) {
	if id > c.lastID {
		c.lastID = id
	}
}

// nextLocalID выдает следующий id без обращения к хранилищу. Удаленные id не переиспользуются.
func (c *collection[T]) nextLocalID() int64 {
	c.lastID++
	return c.lastID
}

func (c *collection[T]) append(item T) {
	c.items = append(c.items, item)
	c.track(c.idOf(item))
}

// update применяет fn к записи с заданным id
func (c *collection[T]) update(id int64, fn func(*T)) bool {
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			fn(&c.items[i])
			return true
		}
	}
	return false
}

func (c *collection[T]) remove(id int64) bool {
	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(item T) bool { return c.idOf(item) == id })
	return len(c.items) != before
}

func (c *collection[T]) snapshot() []T {
	return slices.Clone(c.items)
}
