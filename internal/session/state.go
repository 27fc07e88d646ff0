package session

import "fmt"

// State - состояние кеша одной коллекции в сессии
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateLoadedFromStore
	StateLoadedFallback
)

var stateNames = map[State]string{
	StateUninitialized:   "uninitialized",
	StateLoading:         "loading",
	StateLoadedFromStore: "loaded_from_store",
	StateLoadedFallback:  "loaded_fallback",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// MarshalText нужен для вывода состояния в JSON строкой
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Loaded сообщает, завершилась ли первичная загрузка
func (s State) Loaded() bool {
	return s == StateLoadedFromStore || s == StateLoadedFallback
}
