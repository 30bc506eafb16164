package keylock

import "sync"

// Locker выдаёт отдельный мьютекс на каждый ключ.
// Записи удаляются из карты, когда последний владелец отпускает ключ,
// поэтому память не растёт вместе с числом когда-либо виденных чатов.
type Locker struct {
	mu    sync.Mutex
	locks map[int64]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New создаёт пустой Locker.
func New() *Locker {
	return &Locker{locks: make(map[int64]*entry)}
}

// Lock блокирует ключ key и возвращает функцию разблокировки.
// Захват одного ключа не ждёт другие ключи.
func (l *Locker) Lock(key int64) (unlock func()) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

// Len возвращает число ключей, которые сейчас заняты или ожидаются.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}
